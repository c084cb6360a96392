package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AssetCache implements ports.AssetCache using Redis. Cached snapshots are
// keyed by serial number; every mutating path invalidates, so a stale entry
// can live at most one TTL after a crash between commit and invalidate.
type AssetCache struct {
	client *goredis.Client
	prefix string
}

// NewAssetCache creates a new Redis-backed asset snapshot cache.
func NewAssetCache(client *goredis.Client) *AssetCache {
	return &AssetCache{
		client: client,
		prefix: "asset:",
	}
}

// Get retrieves a cached asset snapshot by serial number.
// Returns nil, nil if the key does not exist.
func (c *AssetCache) Get(ctx context.Context, serial string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+serial).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis asset get: %w", err)
	}
	return val, nil
}

// Set stores an asset snapshot with TTL.
func (c *AssetCache) Set(ctx context.Context, serial string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+serial, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis asset set: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a serial number.
func (c *AssetCache) Invalidate(ctx context.Context, serial string) error {
	if err := c.client.Del(ctx, c.prefix+serial).Err(); err != nil {
		return fmt.Errorf("redis asset invalidate: %w", err)
	}
	return nil
}
