package vbadoc

import (
	"context"
	"time"
)

// Cache stores serialized catalog results with an expiry.
type Cache interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl, replacing any previous value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Keys returns the keys of all unexpired entries.
	Keys(ctx context.Context) ([]string, error)

	// DeleteExpired removes expired entries and returns how many were removed.
	DeleteExpired(ctx context.Context) (int, error)
}
