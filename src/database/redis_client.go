package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// RedisOptions accepts either "host:port" or a redis:// URL.
func RedisOptions(uri string) (*redis.Options, error) {
	if strings.Contains(uri, "://") {
		return redis.ParseURL(uri)
	}
	return &redis.Options{
		Addr: uri, // เช่น localhost:6379
		DB:   0,
	}, nil
}

// NewRedisClient returns nil when Redis is not configured.
func NewRedisClient(ctx context.Context, uri string) (*redis.Client, error) {
	if uri == "" {
		log.Warn("⚠️ REDIS_URI not set. Redis features are disabled.")
		return nil, nil
	}

	opts, err := RedisOptions(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	log.Info("✅ Redis connected successfully")
	return client, nil
}
