// Package ratelimit throttles requests per client key, in process or
// across replicas through Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"newsportal/config"
	"newsportal/logging"
)

// Limiter decides whether the next request for key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Close() error
}

// New returns a Redis limiter when Redis is configured and an in-memory
// token bucket otherwise.
func New(redisCfg *config.RedisConfig, cfg *config.CommentConfig) (Limiter, error) {
	perSecond := rate.Limit(cfg.RatePerMinute / 60)

	if !redisCfg.Enabled {
		logging.L().Info("Using in-memory rate limiter",
			zap.Float64("per_minute", cfg.RatePerMinute), zap.Int("burst", cfg.Burst))
		return NewMemory(perSecond, cfg.Burst), nil
	}

	opt, err := redis.ParseURL(redisCfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.L().Info("Using Redis rate limiter", zap.String("addr", opt.Addr))
	return NewRedis(client, int(cfg.RatePerMinute)+cfg.Burst, time.Minute), nil
}
