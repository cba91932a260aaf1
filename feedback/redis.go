package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures RedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // key prefix, default "lvtrace:"
	TTL      time.Duration // expiration, 0 keeps values forever
}

// RedisStore keeps values as plain Redis strings.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a store. No connection is made until first use.
func NewRedisStore(opts RedisOptions) *RedisStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "lvtrace:"
	}

	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		prefix: prefix,
		ttl:    opts.TTL,
	}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("feedback: ping redis: %w", err)
	}

	return nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, key, value string) error {
	key, err := checkKey(key)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("feedback: save %q to redis: %w", key, err)
	}

	return nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, key string) (string, error) {
	key, err := checkKey(key)
	if err != nil {
		return "", err
	}
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("load %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("feedback: load %q from redis: %w", key, err)
	}

	return v, nil
}

// Close implements Store.
func (s *RedisStore) Close() error { return s.client.Close() }
