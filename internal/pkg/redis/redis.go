package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
)

type RedisClient struct {
	Client *redis.Client
	log    *logrus.Logger
}

func NewRedisClient(cfg *configs.RedisConfig, log *logrus.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return &RedisClient{Client: rdb, log: log}, nil
}

// NewFromClient wraps an existing client, e.g. one pointed at miniredis in tests.
func NewFromClient(rdb *redis.Client, log *logrus.Logger) *RedisClient {
	return &RedisClient{Client: rdb, log: log}
}

func (rc *RedisClient) Close() {
	if rc.Client != nil {
		if err := rc.Client.Close(); err != nil {
			rc.log.Warnf("Failed to close redis connection: %v", err)
		}
	}
}
