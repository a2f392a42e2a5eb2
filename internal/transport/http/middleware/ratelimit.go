package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"

	sweepEvery = time.Minute
)

// Counter records one hit for key and reports the hits seen in the current
// window together with the time left until it closes. A window opens with the
// first hit for a key and lasts exactly size. Hit must be atomic.
type Counter interface {
	Hit(ctx context.Context, key string, size time.Duration) (hits int, ttl time.Duration, err error)
}

// RateLimit rejects a client once it has made max requests inside the current
// fixed window. Counters are keyed by name and client IP, so several limiters can
// share one counter. A nil counter keeps windows in process memory.
func RateLimit(name string, max int, window time.Duration, counter Counter) fiber.Handler {
	if counter == nil {
		counter = NewMemoryCounter()
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return name + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
		LimiterMiddleware: fixedWindow{counter: counter},
	})
}

// fixedWindow is a limiter.Handler counting through a Counter instead of
// fiber's second-granular storage manager.
type fixedWindow struct {
	counter Counter
}

func (w fixedWindow) New(cfg limiter.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		hits, ttl, err := w.counter.Hit(c.UserContext(), cfg.KeyGenerator(c), cfg.Expiration)
		if err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}

		reset := strconv.Itoa(int(math.Ceil(ttl.Seconds())))
		if hits > cfg.Max {
			c.Set(fiber.HeaderRetryAfter, reset)
			return cfg.LimitReached(c)
		}

		c.Set(headerRateLimitLimit, strconv.Itoa(cfg.Max))
		c.Set(headerRateLimitRemaining, strconv.Itoa(cfg.Max-hits))
		c.Set(headerRateLimitReset, reset)
		return c.Next()
	}
}

type bucket struct {
	hits    int
	expires time.Time
}

// MemoryCounter keeps windows in process memory. Expired windows are swept
// at most once a minute.
type MemoryCounter struct {
	mu        sync.Mutex
	windows   map[string]bucket
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryCounter returns an empty in-process counter.
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		windows: make(map[string]bucket),
		now:     time.Now,
	}
}

// Hit implements Counter.
func (m *MemoryCounter) Hit(_ context.Context, key string, size time.Duration) (int, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.After(m.nextSweep) {
		for k, w := range m.windows {
			if !now.Before(w.expires) {
				delete(m.windows, k)
			}
		}
		m.nextSweep = now.Add(sweepEvery)
	}

	w, ok := m.windows[key]
	if !ok || !now.Before(w.expires) {
		w = bucket{expires: now.Add(size)}
	}
	w.hits++
	m.windows[key] = w

	return w.hits, w.expires.Sub(now), nil
}
