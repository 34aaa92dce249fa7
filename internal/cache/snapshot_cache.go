package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// SnapshotCache stores immutable feed snapshots in Redis, keyed by sport key.
// Entries are invalidated purely by TTL, never partially updated; racing
// writers simply overwrite each other (last writer wins), which is safe
// because stored values are immutable.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// SnapshotCacheConfig holds Redis cache configuration
type SnapshotCacheConfig struct {
	Addr     string // e.g. "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // snapshot freshness window, e.g. 5 * time.Minute
}

// NewSnapshotCache creates a Redis-backed snapshot cache
func NewSnapshotCache(config SnapshotCacheConfig, logger zerolog.Logger) *SnapshotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &SnapshotCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "snapshot_cache").Logger(),
	}
}

func snapshotKey(sportKey string) string {
	return fmt.Sprintf("snapshot:%s", sportKey)
}

// Set caches a feed snapshot for its TTL
func (c *SnapshotCache) Set(ctx context.Context, snapshot *models.FeedSnapshot) error {
	key := snapshotKey(snapshot.SportKey)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Int("events", len(snapshot.Events)).
		Dur("ttl", c.ttl).
		Msg("cached feed snapshot")

	return nil
}

// Get retrieves a cached snapshot. A miss returns (nil, nil); the caller
// fetches fresh in that case.
func (c *SnapshotCache) Get(ctx context.Context, sportKey string) (*models.FeedSnapshot, error) {
	key := snapshotKey(sportKey)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var snapshot models.FeedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// Ping checks the Redis connection
func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
