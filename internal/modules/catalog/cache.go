// README: Read-through Redis cache in front of any catalog source.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"tripsense/internal/logger"
	"tripsense/internal/metrics"
	"tripsense/internal/modules/events"
	"tripsense/internal/modules/transport"
	"tripsense/internal/types"
)

const (
	optionsKeyPrefix = "catalog:options:%s"
	eventsKey        = "catalog:events"

	// loadTimeout bounds a shared load, which outlives any single caller.
	loadTimeout = 10 * time.Second
)

// CachedSource serves reads from Redis and falls through to next on a miss.
// Redis failures are logged and bypassed; only next's errors reach the caller.
// Concurrent misses on one key share a single load.
type CachedSource struct {
	next  Source
	redis *redis.Client
	ttl   time.Duration
	group singleflight.Group
}

func NewCachedSource(next Source, rdb *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{next: next, redis: rdb, ttl: ttl}
}

func (c *CachedSource) ListOptions(ctx context.Context, mode types.Mode) ([]transport.Option, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("list options for %q: %w", mode, ErrUnknownMode)
	}
	return readThrough(ctx, c, optionsKey(mode), func(ctx context.Context) ([]transport.Option, error) {
		return c.next.ListOptions(ctx, mode)
	})
}

func (c *CachedSource) ListEvents(ctx context.Context) ([]events.Record, error) {
	return readThrough(ctx, c, eventsKey, c.next.ListEvents)
}

// Invalidate drops every cached catalog entry.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	keys := []string{eventsKey}
	for _, m := range types.Modes {
		keys = append(keys, optionsKey(m))
	}
	return c.redis.Del(ctx, keys...).Err()
}

func readThrough[T any](ctx context.Context, c *CachedSource, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	val, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out []T
		jerr := json.Unmarshal(val, &out)
		if jerr == nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return out, nil
		}
		logger.Warn(ctx, "discarding corrupt catalog cache entry", "key", key, "error", jerr.Error())
	case errors.Is(err, redis.Nil):
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CatalogCacheTotal.WithLabelValues("error").Inc()
		logger.Warn(ctx, "catalog cache read failed", "key", key, "error", err.Error())
	}

	// The load runs detached from the caller that started it, so one caller
	// giving up does not fail the others waiting on the same key.
	ch := c.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		out, err := load(lctx)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(out); err == nil {
			if err := c.redis.Set(lctx, key, payload, c.ttl).Err(); err != nil {
				logger.Warn(lctx, "catalog cache write failed", "key", key, "error", err.Error())
			}
		}
		return out, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	}
}

func optionsKey(mode types.Mode) string {
	return fmt.Sprintf(optionsKeyPrefix, string(mode))
}
