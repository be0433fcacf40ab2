package mock

import (
	"context"
	"time"

	"github.com/fwojciec/vbadoc"
)

var _ vbadoc.Cache = (*Cache)(nil)

// Cache is a mock implementation of vbadoc.Cache.
type Cache struct {
	GetFn           func(ctx context.Context, key string) ([]byte, error)
	SetFn           func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	KeysFn          func(ctx context.Context) ([]string, error)
	DeleteExpiredFn func(ctx context.Context) (int, error)
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.SetFn(ctx, key, value, ttl)
}

func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	return c.KeysFn(ctx)
}

func (c *Cache) DeleteExpired(ctx context.Context) (int, error) {
	return c.DeleteExpiredFn(ctx)
}
