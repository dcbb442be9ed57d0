package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value cache with TTL support.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value. A zero ttl uses the store's default,
	// a negative ttl means the entry never expires.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases resources such as background goroutines.
	Close() error
}

// Marshaler serializes cache values for byte-oriented backends like Redis.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

var flight singleflight.Group

// Remember returns the cached value for key, or runs loader and caches
// the result with the given ttl. Concurrent misses for the same key share
// a single loader call. A loader error is returned uncached.
func Remember[V any](ctx context.Context, c Cache[V], key string, ttl time.Duration, loader func(ctx context.Context) (V, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := flight.Do(key, func() (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val := v.(V)
	// Best effort; a failed Set only costs a reload next time.
	_ = c.Set(ctx, key, val, ttl)

	return val, nil
}
