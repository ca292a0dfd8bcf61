// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/config"
	"github.com/GYRAG/beetkar-hub/internal/models"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const latestKey = "beetkar:sensor:latest"

// LatestCache keeps the most recent reading in Redis so the dashboard's
// polling of /latest does not hit Postgres on every tick. The cache is
// strictly best-effort: every failure falls through to the database and is
// logged, never surfaced.
type LatestCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a ready cache, or nil when no Redis host is configured. All
// methods are safe to call on a nil receiver.
func New(cfg config.RedisConfig) *LatestCache {
	if !cfg.Enabled() {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	nuts.L.Infof("[LatestCache] Caching latest reading at %s:%d (ttl %v)", cfg.Host, cfg.Port, cfg.TTL)
	return &LatestCache{client: client, ttl: cfg.TTL}
}

// Set stores the reading as the current latest.
func (c *LatestCache) Set(ctx context.Context, reading *models.SensorReading) {
	if c == nil || reading == nil {
		return
	}
	payload, err := json.Marshal(reading)
	if err != nil {
		nuts.L.Warnf("[LatestCache] Failed to marshal reading: %v", err)
		return
	}
	if err := c.client.Set(ctx, latestKey, payload, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[LatestCache] Failed to store latest reading: %v", err)
	}
}

// Get returns the cached latest reading, or (nil, false) on miss or error.
func (c *LatestCache) Get(ctx context.Context) (*models.SensorReading, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, latestKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		nuts.L.Warnf("[LatestCache] Failed to fetch latest reading: %v", err)
		return nil, false
	}
	reading := &models.SensorReading{}
	if err := json.Unmarshal(payload, reading); err != nil {
		nuts.L.Warnf("[LatestCache] Failed to unmarshal cached reading: %v", err)
		return nil, false
	}
	return reading, true
}

// Close releases the Redis connection.
func (c *LatestCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
