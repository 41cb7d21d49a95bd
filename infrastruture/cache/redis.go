// Package cache provides a Redis-backed cache for rendered maze images.
package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "mazes:render"

	// defaultTTL keeps rendered images around for a day; the wall grid
	// in Mongo is the source of truth, so eviction only costs a render.
	defaultTTL = 24 * time.Hour

	lockExpiry   = 8 * time.Second
	lockKeyFmt   = "%s:lock:%s"
	renderKeyFmt = "%s:%s"
)

// Options configures the render cache.
type Options struct {
	// Prefix namespaces the cache keys.
	Prefix string

	// TTL bounds how long rendered images stay cached.
	TTL time.Duration

	// Cache Logger
	Logger *log.Logger
}

// RenderCache stores rendered maze images in Redis. A redsync mutex per
// maze makes rendering single-flight across instances: concurrent
// requests for an uncached maze render it once, not once per caller.
type RenderCache struct {
	// Redis client
	client *redis.Client

	// Redis lock to hold while filling a missing entry
	locker *redsync.Redsync

	opts *Options
}

// New creates a RenderCache with the provided Redis client and options.
func New(client *redis.Client, opts *Options) (*RenderCache, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, fmt.Sprintf("%s: ", opts.Prefix), log.LstdFlags|log.Lshortfile)
	}

	c := &RenderCache{
		client: client,
		opts:   opts,
	}
	pool := goredis.NewPool(c.client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the cached image bytes for key, rendering and storing
// them on a miss. The fill happens under a named lock so only one
// caller renders; the rest find the entry once the lock is released.
func (c *RenderCache) Get(ctx context.Context, key string, render func() ([]byte, error)) ([]byte, error) {
	cacheKey := fmt.Sprintf(renderKeyFmt, c.opts.Prefix, key)

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		return data, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("cache: reading %s: %w", cacheKey, err)
	}

	mutex := c.locker.NewMutex(
		fmt.Sprintf(lockKeyFmt, c.opts.Prefix, key),
		redsync.WithExpiry(lockExpiry),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("cache: locking render of %s: %w", key, err)
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			c.opts.Logger.Printf("unlocking render of %s: %v", key, err)
		}
	}()

	// Someone may have filled the entry while we waited for the lock.
	data, err = c.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		return data, nil
	}
	if err != redis.Nil {
		return nil, fmt.Errorf("cache: reading %s: %w", cacheKey, err)
	}

	data, err = render()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, cacheKey, data, c.opts.TTL).Err(); err != nil {
		// A failed write only loses the cache benefit, not the image.
		c.opts.Logger.Printf("storing render of %s: %v", key, err)
	}
	return data, nil
}
