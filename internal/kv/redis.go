package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisPrefix namespaces keys written by the popup.
const DefaultRedisPrefix = "tmux-bookmark-popup:"

// Redis stores values in a Redis server shared between machines, giving
// every popup that points at it the same bookmarks.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// OpenRedis connects to the configured server and verifies it with PING.
func OpenRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	dial := opts.DialTimeout
	if dial <= 0 {
		dial = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Address,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: dial,
	})
	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Address, err)
	}
	return NewRedis(client, opts.Prefix), nil
}

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + k }

func (r *Redis) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	values, err := r.client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			// absent key
		case string:
			out[keys[i]] = []byte(val)
		case []byte:
			out[keys[i]] = cloneBytes(val)
		default:
			return nil, fmt.Errorf("redis mget %s: unexpected value type %T", keys[i], v)
		}
	}
	return out, nil
}

func (r *Redis) Set(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(values)*2)
	for _, k := range sortedKeys(values) {
		pairs = append(pairs, r.key(k), values[k])
	}
	if err := r.client.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("redis mset: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
