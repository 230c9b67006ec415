package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-portal/internal/infra"
)

type RedisStore struct {
	client *redis.Client
	ns     string
	logger *slog.Logger
}

type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// NewRedisStore connects and pings once so a bad address fails at startup.
func NewRedisStore(ctx context.Context, opts RedisOptions, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, infra.WrapStoreErr(logger, infra.KindUnavailable, "redis ping", err)
	}
	return &RedisStore{client: client, ns: opts.Namespace, logger: logger}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	b, err := s.client.Get(ctx, namespaced(s.ns, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapStoreErr(s.logger, infra.KindNotFound, "key not found", nil)
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindUnavailable, "redis get", err)
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, namespaced(s.ns, key), value, ttl).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "redis set", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Del(ctx, namespaced(s.ns, key)).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindUnavailable, "redis del", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
