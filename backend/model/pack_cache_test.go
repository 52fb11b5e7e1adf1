package model

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBackend is an in-process stand-in for the Redis commands the pack cache uses.
// Expirations are ignored.
type memoryBackend struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: map[string]string{}}
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		panic("unexpected cache value type")
	}
}

func (m *memoryBackend) Get(_ context.Context, key string) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryBackend) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = toString(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryBackend) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = toString(value)
	return redis.NewBoolResult(true, nil)
}

func TestPackRepository_CacheReadThroughAndInvalidate(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), newPackCache(newMemoryBackend(), time.Minute))
	seeded := seedPack(t, repo)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	cached, ok := repo.cache.Get(ctx, seeded.ID)
	require.True(t, ok)
	assert.Equal(t, seeded.Name, cached.Name)

	_, err = repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Renamed"}, WithoutRefresh)
	require.NoError(t, err)
	_, ok = repo.cache.Get(ctx, seeded.ID)
	assert.False(t, ok)

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)

	_, err = repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Refreshed"}, WithRefresh)
	require.NoError(t, err)
	cached, ok = repo.cache.Get(ctx, seeded.ID)
	require.True(t, ok)
	assert.Equal(t, "Refreshed", cached.Name)

	_, err = repo.DeleteByID(ctx, seeded.ID)
	require.NoError(t, err)
	_, ok = repo.cache.Get(ctx, seeded.ID)
	assert.False(t, ok)
}

// A reader that loaded the row before a write must not put its copy back afterwards.
func TestPackCache_StaleFillAfterInvalidateIsDropped(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), newPackCache(newMemoryBackend(), time.Minute))
	seeded := seedPack(t, repo)
	ctx := context.Background()

	stale := *seeded
	_, err := repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Renamed"}, WithoutRefresh)
	require.NoError(t, err)

	repo.cache.Fill(ctx, &stale)
	_, ok := repo.cache.Get(ctx, seeded.ID)
	assert.False(t, ok, "stale fill must not land while the tombstone is held")
}

func TestPackCache_StaleFillDoesNotOverwriteRefresh(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), newPackCache(newMemoryBackend(), time.Minute))
	seeded := seedPack(t, repo)
	ctx := context.Background()

	stale := *seeded
	_, err := repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Refreshed"}, WithRefresh)
	require.NoError(t, err)

	repo.cache.Fill(ctx, &stale)
	cached, ok := repo.cache.Get(ctx, seeded.ID)
	require.True(t, ok)
	assert.Equal(t, "Refreshed", cached.Name)
}
