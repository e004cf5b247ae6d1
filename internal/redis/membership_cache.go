package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// MembershipCache keeps each device's last known zone membership between
// location updates. The evaluator itself is stateless; this is the
// caller-owned "previous state" it diffs against. A missing key means the
// device was previously outside every zone.
type MembershipCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewMembershipCache(r *Redis) *MembershipCache {
	return &MembershipCache{
		client: r.Client,
		prefix: "membership:device",
		ttl:    24 * time.Hour,
	}
}

func (c *MembershipCache) key(deviceID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, deviceID)
}

func (c *MembershipCache) Get(ctx context.Context, deviceID int64) (map[uuid.UUID]bool, error) {
	data, err := c.client.Get(ctx, c.key(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return map[uuid.UUID]bool{}, nil
		}
		return nil, err
	}

	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	membership := make(map[uuid.UUID]bool, len(raw))
	for k, v := range raw {
		id, err := uuid.Parse(k)
		if err != nil {
			continue
		}
		membership[id] = v
	}
	return membership, nil
}

func (c *MembershipCache) Set(ctx context.Context, deviceID int64, membership map[uuid.UUID]bool) error {
	raw := make(map[string]bool, len(membership))
	for id, inside := range membership {
		raw[id.String()] = inside
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(deviceID), b, c.ttl).Err()
}
