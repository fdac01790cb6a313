// Package redisstore provides a ports.Store backed by Redis.
//
// Each record is a JSON document under {prefix}:{kind}:{id}. A list under
// {prefix}:{kind}:index keeps insertion order for GetAll. Writes run inside
// WATCH/MULTI/EXEC transactions, so Update is a per-record compare-and-swap:
// a transaction aborted by a concurrent write is retried with exponential
// backoff and jitter.
//
// Every call passes through a circuit breaker. The breaker state and a PING
// back the store's health check.
package redisstore

import (
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-library-service/internal/platform/config"
)

// NewClient builds a go-redis client from configuration. The caller owns the
// client and must Close it on shutdown.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}
