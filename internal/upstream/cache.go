package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"ms-dashboard/internal/models"
	"time"

	"github.com/go-redis/redis/v8"
)

// SnapshotKey is the Redis key holding the current read snapshot.
const SnapshotKey = "dashboard:snapshot"

// Snapshot is one immutable read of the upstream collections. Every
// view derivation works from a whole snapshot; there are no partial
// updates.
type Snapshot struct {
	Events    []models.Event   `json:"events"`
	Bookings  []models.Booking `json:"bookings"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// SnapshotCache stores snapshots in Redis with a TTL, so every
// dashboard instance reads the same snapshot until it expires or a
// change notification invalidates it.
type SnapshotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{Client: client, TTL: ttl}
}

// Get returns the cached snapshot, or (nil, nil) on a miss.
func (c *SnapshotCache) Get(ctx context.Context) (*Snapshot, error) {
	if c.Client == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	raw, err := c.Client.Get(ctx, SnapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get snapshot from Redis: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Set stores a snapshot with the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, snap *Snapshot) error {
	if c.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.Client.Set(ctx, SnapshotKey, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot in Redis: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot so the next read re-fetches.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if c.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := c.Client.Del(ctx, SnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot: %w", err)
	}
	return nil
}
