package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pack-panel/backend/common"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "model_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ServiceOption{}, &Pack{}, &Server{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedPack(t *testing.T, repo *PackRepository) *Pack {
	t.Helper()
	pack := &Pack{
		UUID:       "5f1d0c3c-7a2b-4ad1-9a43-2f6f3f0ad001",
		OptionID:   3,
		Name:       "Vanilla 1.20",
		Version:    "1.20.4",
		Selectable: true,
		Visible:    true,
	}
	require.NoError(t, repo.Create(context.Background(), pack))
	require.NotZero(t, pack.ID)
	return pack
}

func TestPackRepository_FindByIDWithColumns(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)
	seeded := seedPack(t, repo)

	pack, err := repo.FindByID(context.Background(), seeded.ID, "id", "option_id")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, pack.ID)
	assert.Equal(t, int64(3), pack.OptionID)
	assert.Empty(t, pack.Name, "unselected columns must stay empty")

	full, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vanilla 1.20", full.Name)
}

func TestPackRepository_FindByIDNotFound(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)

	_, err := repo.FindByID(context.Background(), 404, "id", "option_id")
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestPackRepository_FindByIDRejectsBadColumn(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)

	_, err := repo.FindByID(context.Background(), 1, "id; drop table packs")
	assert.ErrorContains(t, err, "invalid column")
}

func TestPackRepository_UpdateByID(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)
	seeded := seedPack(t, repo)

	rows, err := repo.UpdateByID(context.Background(), seeded.ID, map[string]any{
		"locked":     true,
		"visible":    false,
		"selectable": false,
		"option_id":  int64(9),
	}, WithoutRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	pack, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.True(t, pack.Locked)
	assert.False(t, pack.Visible)
	assert.False(t, pack.Selectable)
	assert.Equal(t, int64(9), pack.OptionID)
}

func TestPackRepository_UpdateByIDMissingRow(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)

	rows, err := repo.UpdateByID(context.Background(), 999, map[string]any{"locked": true}, WithoutRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestPackRepository_UpdateByIDRejectsUnknownColumnName(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)
	seeded := seedPack(t, repo)

	_, err := repo.UpdateByID(context.Background(), seeded.ID, map[string]any{"test-data": "value"}, WithoutRefresh)
	assert.Error(t, err)
}

func TestPackRepository_DeleteAndList(t *testing.T) {
	repo := NewPackRepository(newTestDB(t), nil)
	first := seedPack(t, repo)
	second := &Pack{UUID: "5f1d0c3c-7a2b-4ad1-9a43-2f6f3f0ad002", OptionID: 3, Name: "Modded"}
	require.NoError(t, repo.Create(context.Background(), second))

	packs, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, second.ID, packs[0].ID)

	rows, err := repo.DeleteByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.FindByID(context.Background(), first.ID)
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestPackRepository_RedisCache(t *testing.T) {
	connString := os.Getenv("REDIS_CONN_STRING")
	if connString == "" {
		t.Skip("Redis not enabled, skipping test")
	}
	opt, err := redis.ParseURL(connString)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()
	common.RedisEnabled = true

	repo := NewPackRepository(newTestDB(t), NewPackCache(client, time.Minute))
	seeded := seedPack(t, repo)
	ctx := context.Background()
	defer client.Del(ctx, packCacheKey(seeded.ID))

	_, err = repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	cached, ok := repo.cache.Get(ctx, seeded.ID)
	require.True(t, ok)
	assert.Equal(t, seeded.Name, cached.Name)

	_, err = repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Renamed"}, WithoutRefresh)
	require.NoError(t, err)
	_, ok = repo.cache.Get(ctx, seeded.ID)
	assert.False(t, ok, "no-refresh writes evict the cached row")

	_, err = repo.UpdateByID(ctx, seeded.ID, map[string]any{"name": "Refreshed"}, WithRefresh)
	require.NoError(t, err)
	cached, ok = repo.cache.Get(ctx, seeded.ID)
	require.True(t, ok)
	assert.Equal(t, "Refreshed", cached.Name)
}

func TestPackCache_NilIsNoop(t *testing.T) {
	var cache *PackCache
	_, ok := cache.Get(context.Background(), 1)
	assert.False(t, ok)
	cache.Set(context.Background(), &Pack{ID: 1})
	cache.Fill(context.Background(), &Pack{ID: 1})
	cache.Invalidate(context.Background(), 1)
	assert.Nil(t, NewPackCache(nil, time.Minute))
}

func TestRefreshModeString(t *testing.T) {
	assert.Equal(t, "no-refresh", WithoutRefresh.String())
	assert.Equal(t, "refresh", WithRefresh.String())
}
