package cache

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"career-guide/internal/config"

	"github.com/redis/go-redis/v9"
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis is a best-effort string cache. When the server cannot be reached at
// startup every call is a no-op miss, so callers never depend on it.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Redis{ttl: cfg.TTL, logger: logger}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		r.warnUnavailableOnce(err)
		_ = client.Close()
		return r
	}

	r.client = client
	return r
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing cache",
			slog.String("kind", "external_service_transient"),
			slog.Any("error", err),
		)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) GetString(ctx context.Context, key string) (string, bool, error) {
	if r.isUnavailable() {
		return "", false, nil
	}
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		r.warnUnavailableOnce(err)
		return "", false, err
	}
	return v, v != "", nil
}

// SetString stores value for ttl; a non-positive ttl uses the configured one.
func (r *Redis) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
