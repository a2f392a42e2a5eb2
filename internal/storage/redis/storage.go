// Package redis counts rate-limit windows in Redis so that replicas share them.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const opTimeout = time.Second

// hitScript increments a window and arms its expiry on the first hit.
// PTTL is re-checked so a key that lost its expiry cannot live forever.
var hitScript = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {hits, ttl}
`)

// Counter keeps windows under prefix:key.
type Counter struct {
	client redis.UniversalClient
	prefix string
}

// NewUniversalClient parses a redis:// URL or plain host:port address.
func NewUniversalClient(addr string) (redis.UniversalClient, error) {
	if addr == "" {
		return nil, errors.New("redis address is empty")
	}
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	return redis.NewClient(opts), nil
}

// New wraps client.
func New(client redis.UniversalClient, prefix string) *Counter {
	return &Counter{client: client, prefix: prefix}
}

// Ping checks connectivity.
func (c *Counter) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Hit atomically counts one request in the window of key.
func (c *Counter) Hit(ctx context.Context, key string, size time.Duration) (int, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ms := size.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	res, err := hitScript.Run(ctx, c.client, []string{c.key(key)}, ms).Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("redis hit %q: %w", key, err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("redis hit %q: unexpected reply %v", key, res)
	}
	hits, ok1 := res[0].(int64)
	ttl, ok2 := res[1].(int64)
	if !ok1 || !ok2 {
		return 0, 0, fmt.Errorf("redis hit %q: unexpected reply %v", key, res)
	}
	return int(hits), time.Duration(ttl) * time.Millisecond, nil
}

// Close closes the underlying client.
func (c *Counter) Close() error {
	return c.client.Close()
}

func (c *Counter) key(k string) string {
	return c.prefix + ":" + k
}
