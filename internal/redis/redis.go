package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 3 * time.Second

type Config struct {
	Addr     string
	Password string
	DB       int
	// PingTimeout bounds the connectivity check in New. Zero means
	// defaultPingTimeout.
	PingTimeout time.Duration
}

func (c Config) pingTimeout() time.Duration {
	if c.PingTimeout <= 0 {
		return defaultPingTimeout
	}
	return c.PingTimeout
}

// New connects a client and verifies the server is reachable before
// handing it out. Idempotency records, rate-limit windows and the
// flight-changed channel all ride on this client.
func New(ctx context.Context, cfg Config) (*redis.Client, error) {
	const op = "redis.New"

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, cfg.pingTimeout())
	defer cancel()

	if _, err := client.Ping(ctxPing).Result(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return client, nil
}
