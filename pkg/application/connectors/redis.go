package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"scoreboard/pkg/logx"
)

// Redis lazily creates one shared client and checks it with PING.
type Redis struct {
	value              *redis.Client
	err                error
	Username           string
	Password           string
	Address            string
	DatabaseNumber     int
	PoolSize           int
	MinIdleConnections int
	MaxIdleConnections int
	init               sync.Once
}

func (r *Redis) Client(ctx context.Context) (*redis.Client, error) {
	r.init.Do(func() {
		client := redis.NewClient(&redis.Options{
			//nolint:exhaustruct
			Network:      "tcp",
			Addr:         r.Address,
			Username:     r.Username,
			Password:     r.Password,
			DB:           r.DatabaseNumber,
			PoolSize:     r.PoolSize,
			MinIdleConns: r.MinIdleConnections,
			MaxIdleConns: r.MaxIdleConnections,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			r.err = fmt.Errorf("redis.Ping: %w", err)

			return
		}

		r.value = client

		logger(ctx).Info(
			"redis connected",
			slog.String("address", r.Address),
			slog.Int("database", r.DatabaseNumber),
		)
	})

	return r.value, r.err
}

func (r *Redis) Close(ctx context.Context) {
	if r.value == nil {
		return
	}

	if err := r.value.Close(); err != nil {
		logger(ctx).Error("redisClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"redis disconnected",
		slog.String("address", r.Address),
		slog.Int("database", r.DatabaseNumber),
	)
}
