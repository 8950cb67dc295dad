package cachestore

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
	if cfg.Capacity != 4096 {
		t.Errorf("expected capacity 4096, got %d", cfg.Capacity)
	}
	if cfg.NumShards != 64 {
		t.Errorf("expected 64 shards, got %d", cfg.NumShards)
	}
	if cfg.TTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.TTL)
	}
	if cfg.EarlyRefresh != nil {
		t.Error("expected early refresh disabled by default")
	}
	if cfg.MissingRecordStorage {
		t.Error("expected missing record storage off by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, true},
		{"negative capacity", func(c *Config) { c.Capacity = -1 }, true},
		{"zero shards", func(c *Config) { c.NumShards = 0 }, true},
		{"zero ttl", func(c *Config) { c.TTL = 0 }, true},
		{"negative ttl", func(c *Config) { c.TTL = -time.Second }, true},
		{"zero eviction percentage", func(c *Config) { c.EvictionPercentage = 0 }, true},
		{"eviction percentage above 100", func(c *Config) { c.EvictionPercentage = 101 }, true},
		{"eviction percentage at bounds", func(c *Config) { c.EvictionPercentage = 100 }, false},
		{"valid early refresh", func(c *Config) {
			c.EarlyRefresh = &EarlyRefreshConfig{
				MinAsyncRefreshTime: time.Second,
				MaxAsyncRefreshTime: 2 * time.Second,
				SyncRefreshTime:     3 * time.Second,
				RetryBaseDelay:      100 * time.Millisecond,
			}
		}, false},
		{"negative early refresh time", func(c *Config) {
			c.EarlyRefresh = &EarlyRefreshConfig{MinAsyncRefreshTime: -time.Second}
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestConfig_ToSturdycOptions(t *testing.T) {
	t.Run("defaults produce no options", func(t *testing.T) {
		if opts := DefaultConfig().ToSturdycOptions(); len(opts) != 0 {
			t.Errorf("expected no options, got %d", len(opts))
		}
	})

	t.Run("every extra produces an option", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EarlyRefresh = &EarlyRefreshConfig{
			MinAsyncRefreshTime: time.Second,
			MaxAsyncRefreshTime: 2 * time.Second,
			SyncRefreshTime:     3 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		}
		cfg.MissingRecordStorage = true
		cfg.EvictionInterval = time.Minute

		if opts := cfg.ToSturdycOptions(); len(opts) != 3 {
			t.Errorf("expected 3 options, got %d", len(opts))
		}
	})
}

func TestNewSturdycStore_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 0

	if _, err := NewSturdycStore(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestSturdycStore_GetOrFetch(t *testing.T) {
	store, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ctx := context.Background()

	fetches := 0
	fetch := func(ctx context.Context) (any, error) {
		fetches++
		return "artifact", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrFetch(ctx, "sig::magic::code::closure", fetch)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if v != "artifact" {
			t.Errorf("expected the stored artifact, got %v", v)
		}
	}

	if fetches != 1 {
		t.Errorf("expected one fetch, got %d", fetches)
	}
	if store.Size() != 1 {
		t.Errorf("expected one entry, got %d", store.Size())
	}
}

func TestSturdycStore_GetOrFetch_NilFetch(t *testing.T) {
	store, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = store.GetOrFetch(context.Background(), "key", nil)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Field != "fetch" {
		t.Errorf("expected the fetch field flagged, got %q", cerr.Field)
	}
}

func TestSturdycStore_GetOrFetch_FetchError(t *testing.T) {
	store, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantErr := errors.New("compile failed")
	_, err = store.GetOrFetch(context.Background(), "key", func(ctx context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected fetch error to propagate, got %v", err)
	}
}

func TestSturdycStore_Delete(t *testing.T) {
	store, err := NewSturdycStore(DefaultConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	ctx := context.Background()

	fetches := 0
	fetch := func(ctx context.Context) (any, error) {
		fetches++
		return "artifact", nil
	}

	if _, err := store.GetOrFetch(ctx, "key", fetch); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.Delete(ctx, "key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := store.GetOrFetch(ctx, "key", fetch); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if fetches != 2 {
		t.Errorf("expected deletion to force a refetch, got %d fetches", fetches)
	}
}
