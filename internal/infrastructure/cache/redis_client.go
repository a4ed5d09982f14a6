package cache

import (
	"log"
	"os"
	"strconv"

	redis "github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client from environment variables, or
// returns nil when REDIS_ADDR is unset. The cache is optional: callers
// must treat a nil client as "cache disabled" and go straight to the
// source of truth.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. redis:6379; empty disables caching)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (optional, default 0)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set; reference price caching disabled")
		return nil
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("[cache][redis] invalid REDIS_DB=%q, using 0", v)
		} else {
			db = parsed
		}
	}

	log.Printf("[cache][redis] connecting addr=%s db=%d", addr, db)
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
