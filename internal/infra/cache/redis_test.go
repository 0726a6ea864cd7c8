//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra/cache"
	"hotel-frontdesk/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "Redisコンテナの起動に失敗")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	return config.RedisConfig{
		Addr:     endpoint,
		CacheTTL: time.Minute,
		Channel:  "hotel:changes:test",
	}
}

func TestRedisCache(t *testing.T) {
	cfg := startRedis(t)
	c := cache.NewRedisCache(cache.NewRedisClient(cfg), cfg)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	type view struct {
		Number string `json:"number"`
	}

	t.Run("タグで無効化", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "rooms:list", []view{{Number: "101"}}, "rooms"))
		require.NoError(t, c.Set(ctx, "menu:list", []view{{Number: "x"}}, "menu"))

		var got []view
		hit, err := c.Get(ctx, "rooms:list", &got)
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, "101", got[0].Number)

		c.Invalidate(ctx, "rooms")

		hit, err = c.Get(ctx, "rooms:list", &got)
		require.NoError(t, err)
		assert.False(t, hit, "rooms entry should be gone")

		hit, err = c.Get(ctx, "menu:list", &got)
		require.NoError(t, err)
		assert.True(t, hit, "menu entry is under another tag")
	})

	t.Run("無効化で世代が進み古い世代の書き込みは読まれない", func(t *testing.T) {
		before, err := c.Stamp(ctx, "ledger", "dashboard")
		require.NoError(t, err)

		c.Invalidate(ctx, "ledger")
		// a read that loaded before the invalidation stores late
		require.NoError(t, c.Set(ctx, "ledger:list@"+before, []view{{Number: "stale"}}, "ledger"))

		after, err := c.Stamp(ctx, "ledger", "dashboard")
		require.NoError(t, err)
		require.NotEqual(t, before, after)

		var got []view
		hit, err := c.Get(ctx, "ledger:list@"+after, &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("変更通知を購読", func(t *testing.T) {
		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		changes, stop := c.Subscribe(subCtx)
		defer stop()

		// give the subscription a moment to register with the server
		time.Sleep(200 * time.Millisecond)
		c.Invalidate(ctx, "bookings", "dashboard")

		select {
		case change := <-changes:
			assert.Equal(t, []string{"bookings", "dashboard"}, change.Tags)
		case <-time.After(5 * time.Second):
			t.Fatal("no change notification received")
		}
	})
}
