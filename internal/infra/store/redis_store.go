package store

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps each slot as a plain string key without expiry.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store over client. The store owns the client and closes it.
func NewRedisStore(client *redis.Client, prefix string) repository.DurableStore {
	return &redisStore{client: client, prefix: prefix}
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return data, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}

func (r *redisStore) redisKey(key string) string {
	return fmt.Sprintf("storefront:%s%s", r.prefix, key)
}
