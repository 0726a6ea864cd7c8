package queries

import (
	"context"
	"log/slog"
)

// Cache is a tagged read-through cache. Writers drop entries by tag.
type Cache interface {
	// Stamp names the current generation of tags. Invalidating any of them
	// moves it on, so entries stored under an older stamp are never read again.
	Stamp(ctx context.Context, tags ...string) (string, error)
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, tags ...string) error
}

// cached serves key from c when present, otherwise loads and stores it. The
// stamp is taken before loading: a value loaded across an invalidation is
// stored under the stale stamp and never served.
func cached[T any](ctx context.Context, c Cache, key string, tags []string, load func(ctx context.Context) (T, error)) (T, error) {
	var v T
	if c == nil {
		return load(ctx)
	}

	stamp, err := c.Stamp(ctx, tags...)
	if err != nil {
		slog.Warn("cache stamp failed", "key", key, "error", err.Error())
		return load(ctx)
	}
	key = key + "@" + stamp

	hit, err := c.Get(ctx, key, &v)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err.Error())
	} else if hit {
		return v, nil
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v, tags...); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err.Error())
	}
	return v, nil
}
