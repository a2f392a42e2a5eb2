package redis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staff-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedis(t *testing.T) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := "localhost:" + resource.GetPort("6379/tcp")
	c := newCounter(t, addr)
	require.NoError(t, pool.Retry(func() error {
		return c.Ping(context.Background())
	}))
	return addr
}

func newCounter(t *testing.T, addr string) *Counter {
	t.Helper()

	client, err := NewUniversalClient(addr)
	require.NoError(t, err)
	c := New(client, "test")
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCounterWindow(t *testing.T) {
	addr := setupRedis(t)
	c := newCounter(t, addr)
	ctx := context.Background()

	hits, ttl, err := c.Hit(ctx, "short:1.2.3.4", 300*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 1, hits)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, 300*time.Millisecond)

	hits, _, err = c.Hit(ctx, "short:1.2.3.4", 300*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 2, hits)

	hits, _, err = c.Hit(ctx, "long:1.2.3.4", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	require.Eventually(t, func() bool {
		hits, _, err := c.Hit(ctx, "short:1.2.3.4", 300*time.Millisecond)
		return err == nil && hits == 1
	}, 3*time.Second, 100*time.Millisecond)
}

func TestCounterParallelReplicas(t *testing.T) {
	addr := setupRedis(t)
	replicas := []*Counter{newCounter(t, addr), newCounter(t, addr)}

	const perReplica = 50
	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	for _, c := range replicas {
		for i := 0; i < perReplica; i++ {
			wg.Add(1)
			go func(c *Counter) {
				defer wg.Done()
				hits, _, err := c.Hit(context.Background(), "shared", time.Minute)
				if err != nil {
					return
				}
				mu.Lock()
				got = append(got, hits)
				mu.Unlock()
			}(c)
		}
	}
	wg.Wait()

	require.Len(t, got, 2*perReplica)
	sort.Ints(got)
	for i, hits := range got {
		require.Equal(t, i+1, hits)
	}
}

func TestRateLimitAcrossApps(t *testing.T) {
	addr := setupRedis(t)

	newApp := func() *fiber.App {
		app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop().Sugar())})
		app.Use(middleware.RateLimit("long", 10, time.Minute, newCounter(t, addr)))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
		return app
	}
	apps := []*fiber.App{newApp(), newApp()}

	var (
		ok, limited atomic.Int32
		wg          sync.WaitGroup
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(app *fiber.App) {
			defer wg.Done()
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			if err != nil {
				return
			}
			switch resp.StatusCode {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusTooManyRequests:
				limited.Add(1)
			}
		}(apps[i%2])
	}
	wg.Wait()

	require.EqualValues(t, 10, ok.Load())
	require.EqualValues(t, 20, limited.Load())
}

func TestNewUniversalClientRejectsEmpty(t *testing.T) {
	_, err := NewUniversalClient("")
	require.Error(t, err)
}
