package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection options. URL accepts either a bare "host:port"
// or a redis:// URL; rediss:// enables TLS.
type Config struct {
	URL          string
	Password     string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
}

// NewRedisClient returns a configured client and verifies connectivity with PING.
// The returned closer must be called on shutdown.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, func(), error) {
	opts, err := options(cfg)
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	closer := func() {
		_ = client.Close()
	}
	return client, closer, nil
}

func options(cfg Config) (*redis.Options, error) {
	var opts *redis.Options
	if strings.HasPrefix(cfg.URL, "redis://") || strings.HasPrefix(cfg.URL, "rediss://") {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.URL}
	}

	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DialTimeout = defaultDuration(cfg.DialTimeout, 3*time.Second)
	opts.ReadTimeout = defaultDuration(cfg.ReadTimeout, 2*time.Second)
	opts.WriteTimeout = defaultDuration(cfg.WriteTimeout, 2*time.Second)
	opts.PoolSize = defaultInt(cfg.PoolSize, 10)
	opts.MinIdleConns = defaultInt(cfg.MinIdleConns, 2)
	return opts, nil
}

func defaultDuration(v, d time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return d
}

func defaultInt(v, d int) int {
	if v > 0 {
		return v
	}
	return d
}
