package cache

import "context"

// FetchFn is the function signature Store expects when computing a value
// missing from the cache.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Store exposes the read-through operations dispatchers need when caching
// compiled artifacts. Implementations own eviction, expiry, and stampede
// control; callers only derive keys and fetch.
// It is exported so that other packages can provide alternate artifact
// stores.
type Store interface {
	GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error)
	Delete(ctx context.Context, key string) error
}

// GetOrFetch is a type-safe wrapper function that provides generic support
// for Store.
func GetOrFetch[T any](ctx context.Context, store Store, key string, fetch FetchFn[T]) (T, error) {
	var zero T

	result, err := store.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}

	typed, ok := result.(T)
	if !ok {
		return zero, ErrInvalidResultType
	}
	return typed, nil
}
