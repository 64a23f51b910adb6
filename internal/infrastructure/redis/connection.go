package redis

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"orderhub/internal/config"
)

func NewConnection(ctx context.Context, cfg config.CacheConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}
