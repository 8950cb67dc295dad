package cachestore

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc artifact store adapter.
// It encapsulates the core sturdyc options needed for cache initialization.
type Config struct {
	// Capacity defines the maximum number of compiled artifacts the store
	// can hold. Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0.
	NumShards int

	// TTL is the default time-to-live for stored artifacts. After this
	// duration, entries are considered expired and the next lookup
	// recompiles. Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the store reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EarlyRefresh configures early refresh behavior for stored entries.
	// If nil, early refresh is disabled. Compiled artifacts do not go
	// stale before expiry, so most deployments leave this nil.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage enables storage for missing record flags.
	// Only relevant when a fetch reports sturdyc.ErrNotFound; compile
	// fetches never do, so this is off by default.
	MissingRecordStorage bool

	// EvictionInterval sets how often the store checks for expired entries.
	// Zero value uses the sturdyc default interval.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig configures early refresh behavior. Early refresh
// recomputes entries before they expire when they are frequently accessed,
// trading background compile work for stable lookup latency.
type EarlyRefreshConfig struct {
	// MinAsyncRefreshTime is the minimum time after which an async refresh can occur
	MinAsyncRefreshTime time.Duration

	// MaxAsyncRefreshTime is the maximum time after which an async refresh can occur
	MaxAsyncRefreshTime time.Duration

	// SyncRefreshTime is when a refresh becomes synchronous instead of async
	SyncRefreshTime time.Duration

	// RetryBaseDelay is the base delay for retry attempts when early refresh fails
	RetryBaseDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults for an in-process
// compiled artifact store: room for a few thousand overloads, a long TTL,
// and no early refresh.
func DefaultConfig() Config {
	return Config{
		Capacity:             4096,
		NumShards:            64,
		TTL:                  30 * time.Minute,
		EvictionPercentage:   10,
		EarlyRefresh:         nil,
		MissingRecordStorage: false,
		EvictionInterval:     0,
	}
}

// ToSturdycOptions converts the Config to a sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly to
// sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}

	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Capacity,
			validation.Required.Error("must be greater than 0"),
			validation.Min(1).Error("must be greater than 0")),
		validation.Field(&c.NumShards,
			validation.Required.Error("must be greater than 0"),
			validation.Min(1).Error("must be greater than 0")),
		validation.Field(&c.TTL,
			validation.Required.Error("must be greater than 0"),
			validation.Min(time.Nanosecond).Error("must be greater than 0")),
		validation.Field(&c.EvictionPercentage,
			validation.Required.Error("must be between 1 and 100"),
			validation.Min(1).Error("must be between 1 and 100"),
			validation.Max(100).Error("must be between 1 and 100")),
	); err != nil {
		return err
	}

	if c.EarlyRefresh == nil {
		return nil
	}

	return validation.ValidateStruct(c.EarlyRefresh,
		validation.Field(&c.EarlyRefresh.MinAsyncRefreshTime,
			validation.Min(time.Duration(0)).Error("must be non-negative")),
		validation.Field(&c.EarlyRefresh.MaxAsyncRefreshTime,
			validation.Min(time.Duration(0)).Error("must be non-negative")),
		validation.Field(&c.EarlyRefresh.SyncRefreshTime,
			validation.Min(time.Duration(0)).Error("must be non-negative")),
		validation.Field(&c.EarlyRefresh.RetryBaseDelay,
			validation.Min(time.Duration(0)).Error("must be non-negative")),
	)
}

// ConfigError represents an invalid argument passed to a store operation.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "cachestore: " + e.Field + " " + e.Message
}

// sturdycStore wraps a sturdyc client providing artifact caching behaviour.
type sturdycStore struct {
	client *sturdyc.Client[any]
}

// NewSturdycStore creates a new sturdyc artifact store adapter.
// It validates the configuration and initializes a sturdyc client with the
// provided settings. Capacity, NumShards, TTL, and EvictionPercentage are
// passed to sturdyc.New(); the remaining options are applied via
// ToSturdycOptions().
func NewSturdycStore(cfg Config) (*sturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycStore{client: client}, nil
}

// GetOrFetch returns the value stored under key, invoking fetch to compute
// it on a miss. Concurrent callers of the same key share a single in-flight
// fetch, which is what keeps compilation at most-once per key.
func (s *sturdycStore) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	if fetch == nil {
		return nil, &ConfigError{Field: "fetch", Message: "cannot be nil"}
	}
	return s.client.GetOrFetch(ctx, key, fetch)
}

// Delete removes a single entry from the store using the provided key.
// Subsequent GetOrFetch calls for that key recompute.
func (s *sturdycStore) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// Size reports how many entries the store currently holds.
func (s *sturdycStore) Size() int {
	return s.client.Size()
}
