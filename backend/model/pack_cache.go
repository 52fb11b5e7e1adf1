package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pack-panel/backend/common"

	"github.com/redis/go-redis/v9"
)

// packTombstone marks a pack as recently written. While it is present reads miss
// and read-through fills are refused, so a reader holding the pre-write row cannot
// put it back.
const packTombstone = "evicted"

const defaultTombstoneTTL = 5 * time.Second

type packCacheBackend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// PackCache keeps JSON snapshots of full pack rows in Redis.
// A nil *PackCache is valid and caches nothing.
type PackCache struct {
	backend      packCacheBackend
	ttl          time.Duration
	tombstoneTTL time.Duration
}

func NewPackCache(client *redis.Client, ttl time.Duration) *PackCache {
	if client == nil {
		return nil
	}
	return newPackCache(client, ttl)
}

func newPackCache(backend packCacheBackend, ttl time.Duration) *PackCache {
	return &PackCache{backend: backend, ttl: ttl, tombstoneTTL: defaultTombstoneTTL}
}

func packCacheKey(id int64) string {
	return fmt.Sprintf("pack:%d", id)
}

func (c *PackCache) Get(ctx context.Context, id int64) (*Pack, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.backend.Get(ctx, packCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			common.Logger.Warn().Err(err).Int64("pack_id", id).Msg("read pack cache")
		}
		return nil, false
	}
	if string(data) == packTombstone {
		return nil, false
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		common.Logger.Warn().Err(err).Int64("pack_id", id).Msg("decode pack cache")
		return nil, false
	}
	return &pack, true
}

// Fill caches a row read from the database only if nothing, not even a tombstone, is cached.
func (c *PackCache) Fill(ctx context.Context, pack *Pack) {
	if c == nil {
		return
	}
	data, err := json.Marshal(pack)
	if err != nil {
		return
	}
	if err := c.backend.SetNX(ctx, packCacheKey(pack.ID), data, c.ttl).Err(); err != nil {
		common.Logger.Warn().Err(err).Int64("pack_id", pack.ID).Msg("fill pack cache")
	}
}

// Set overwrites the cached row. Only writers that just re-read the row may call it.
func (c *PackCache) Set(ctx context.Context, pack *Pack) {
	if c == nil {
		return
	}
	data, err := json.Marshal(pack)
	if err != nil {
		return
	}
	if err := c.backend.Set(ctx, packCacheKey(pack.ID), data, c.ttl).Err(); err != nil {
		common.Logger.Warn().Err(err).Int64("pack_id", pack.ID).Msg("write pack cache")
	}
}

// Invalidate replaces the cached row with a short lived tombstone.
func (c *PackCache) Invalidate(ctx context.Context, id int64) {
	if c == nil {
		return
	}
	if err := c.backend.Set(ctx, packCacheKey(id), packTombstone, c.tombstoneTTL).Err(); err != nil {
		common.Logger.Warn().Err(err).Int64("pack_id", id).Msg("evict pack cache")
	}
}
