package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	channelCacheTTL = 15 * time.Minute
)

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "playtube_cache_hits_total",
		Help: "Total Redis cache hits.",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "playtube_cache_misses_total",
		Help: "Total Redis cache misses.",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses)
}

// CacheService is a Redis cache-aside layer for anonymous channel profile
// lookups. Authenticated lookups bypass it because the projection depends on
// the caller.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. If redisURL is empty or the connection
// fails, the returned service has a nil client and every operation is a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client for health checks. May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetChannel retrieves a cached channel profile. Returns nil when not cached
// or caching is disabled.
func (c *CacheService) GetChannel(ctx context.Context, username string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, channelKey(username)).Bytes()
	if err == redis.Nil {
		cacheMisses.Inc()
		return nil, nil
	}
	if err == nil {
		cacheHits.Inc()
	}
	return data, err
}

// SetChannel stores a channel profile projection.
func (c *CacheService) SetChannel(ctx context.Context, username string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelKey(username), b, channelCacheTTL).Err()
}

// InvalidateChannel drops a cached channel profile. Called after account
// updates and subscription toggles.
func (c *CacheService) InvalidateChannel(ctx context.Context, username string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, channelKey(username)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func channelKey(username string) string {
	return fmt.Sprintf("channel:%s", username)
}
