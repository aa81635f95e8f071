// Package redisstore is a Redis-backed key-value store with TTL support.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV stores values as plain Redis strings.
type KV struct {
	rdb redis.UniversalClient
}

// NewKV wraps an existing client.
func NewKV(rdb redis.UniversalClient) *KV {
	return &KV{rdb: rdb}
}

// Connect creates a client and checks connectivity with a PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error in redis Ping call: %w", err)
	}
	return client, nil
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := k.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error in redis Get call: %w", err)
	}
	return value, true, nil
}

// Set stores value. A non-positive ttl never expires.
func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := k.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("error in redis Set call: %w", err)
	}
	return nil
}

func (k *KV) Del(ctx context.Context, key string) error {
	if err := k.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error in redis Del call: %w", err)
	}
	return nil
}
