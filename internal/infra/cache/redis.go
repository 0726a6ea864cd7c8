package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix = "cache:"
	tagPrefix = "tag:"
	genPrefix = "gen:"
)

// RedisCache is the tagged read cache and the change feed. Every tag owns a set
// of the cache keys stored under it; invalidating a tag deletes those keys and
// publishes the tag names on the change channel.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	channel string
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCache(client *redis.Client, cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:  client,
		ttl:     cfg.CacheTTL,
		channel: cfg.Channel,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Stamp(ctx context.Context, tags ...string) (string, error) {
	if len(tags) == 0 {
		return "", nil
	}
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = genPrefix + tag
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return "", errs.Wrap(err, "redis stamp")
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			s = "0"
		}
		parts[i] = s
	}
	return strings.Join(parts, "."), nil
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "redis get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// a payload from an older build; treat as a miss
		return false, nil
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, tags ...string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "encode cache value")
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+key, raw, c.ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, tagPrefix+tag, keyPrefix+key)
			pipe.Expire(ctx, tagPrefix+tag, 2*c.ttl)
		}
		return nil
	})
	return errs.Wrap(err, "redis set")
}

// Invalidate never fails the write that triggered it; the TTL bounds how long
// a missed invalidation can serve stale data.
func (c *RedisCache) Invalidate(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}

	for _, tag := range tags {
		// bump first: a fill racing this call then lands under the old stamp
		if err := c.client.Incr(ctx, genPrefix+tag).Err(); err != nil {
			slog.Warn("cache generation bump failed", "tag", tag, "error", err.Error())
		}
		keys, err := c.client.SMembers(ctx, tagPrefix+tag).Result()
		if err != nil {
			slog.Warn("cache tag lookup failed", "tag", tag, "error", err.Error())
			continue
		}
		keys = append(keys, tagPrefix+tag)
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			slog.Warn("cache invalidation failed", "tag", tag, "error", err.Error())
		}
	}

	msg, err := json.Marshal(queries.Change{Tags: tags, At: time.Now().UTC()})
	if err != nil {
		return
	}
	if err := c.client.Publish(ctx, c.channel, msg).Err(); err != nil {
		slog.Warn("change notification failed", "tags", tags, "error", err.Error())
	}
}

func (c *RedisCache) Subscribe(ctx context.Context) (<-chan queries.Change, func()) {
	sub := c.client.Subscribe(ctx, c.channel)
	out := make(chan queries.Change, 16)
	done := make(chan struct{})

	go func() {
		defer close(out)
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var change queries.Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					slog.Warn("malformed change notification", "error", err.Error())
					continue
				}
				select {
				case out <- change:
				default:
					slog.Debug("slow change subscriber, dropping notification")
				}
			}
		}
	}()

	stop := func() {
		select {
		case <-done:
		default:
			close(done)
		}
		_ = sub.Close()
	}
	return out, stop
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
