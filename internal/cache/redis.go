package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default TTL for cached dashboard series. Imports invalidate eagerly, so
// this mostly bounds staleness when invalidation is missed.
const SeriesTTL = 10 * time.Minute

// RedisCache caches rendered JSON payloads for the dashboard series
// endpoints. A nil *RedisCache is valid and behaves as an always-miss
// cache, so the server runs degraded when redis is absent.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	if rc == nil {
		return nil
	}
	return rc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	if rc == nil {
		return fmt.Errorf("redis not configured")
	}
	return rc.client.Ping(ctx).Err()
}

// Set stores a key-value pair with TTL
func (rc *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if rc == nil {
		return nil
	}
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key. A miss (or a nil cache) returns ok=false.
func (rc *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	if rc == nil {
		return "", false, nil
	}
	val, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Delete removes keys
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if rc == nil || len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}

// TeamSeriesKey is the cache key for one team-scoped series endpoint.
// kind distinguishes the series (stats, overall, scores).
func TeamSeriesKey(team, kind string) string {
	return fmt.Sprintf("metis:series:%s:%s", team, kind)
}

// PlayerScoresKey is the cache key for one player's cog score series.
func PlayerScoresKey(playerName string) string {
	return fmt.Sprintf("metis:scores:player:%s", playerName)
}

// InvalidateTeam drops every cached series for a team. Called after an
// import or a sync touches the team's rows.
func (rc *RedisCache) InvalidateTeam(ctx context.Context, team string) error {
	return rc.Delete(ctx,
		TeamSeriesKey(team, "stats"),
		TeamSeriesKey(team, "overall"),
		TeamSeriesKey(team, "scores"),
	)
}
