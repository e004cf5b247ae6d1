package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"educafric/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ZoneCache holds the active safe zones per owning scope so the tracking
// path does not hit postgres on every location update. A cache miss returns
// (nil, nil); callers fall back to the store.
type ZoneCache struct {
	client *goredis.Client
	prefix string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		prefix: "zones:active",
	}
}

func (c *ZoneCache) key(scopeType domain.ScopeType, scopeID int64) string {
	return fmt.Sprintf("%s:%s:%d", c.prefix, scopeType, scopeID)
}

func (c *ZoneCache) GetScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) ([]domain.SafeZone, error) {
	data, err := c.client.Get(ctx, c.key(scopeType, scopeID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zones []domain.SafeZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}

	return zones, nil
}

func (c *ZoneCache) SetScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64, zones []domain.SafeZone, ttl time.Duration) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(scopeType, scopeID), b, ttl).Err()
}

func (c *ZoneCache) InvalidateScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) error {
	return c.client.Del(ctx, c.key(scopeType, scopeID)).Err()
}
