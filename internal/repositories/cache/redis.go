// Package cache provides the redis-backed read cache for wallet lookups.
package cache

import (
	"github.com/redis/go-redis/v9"

	"walletsync/internal/config"
)

// NewRedisClient builds a client from service configuration.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
