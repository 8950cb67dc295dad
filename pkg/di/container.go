// Package di wires the compilation cache together: it builds the artifact
// store, owns the target registry, and hands out dispatchers. Target
// registration is an explicit table held here rather than process-wide
// state, so composition stays testable and order-independent.
package di

import (
	"errors"

	"github.com/goliatone/go-jit-cache/cache"
	"github.com/goliatone/go-jit-cache/hofcache"
	"github.com/goliatone/go-jit-cache/sig"
	"github.com/goliatone/go-jit-cache/target"
	"go.uber.org/zap"
)

// Symbolic target names the container registers. Both share the backend
// the container was built around; they differ only in key derivation.
const (
	// TargetCPU caches under the default instance-form keys.
	TargetCPU = "cpu"

	// TargetHOF caches under identity-rewritten keys, so higher-order
	// calls over equivalent function arguments share artifacts.
	TargetHOF = "hof"
)

// Container provides dependency injection for the compilation cache.
// It manages the singleton artifact store and target registry, and
// provides a factory for dispatchers wired to both.
type Container struct {
	registry *target.Registry
	store    cache.Store
	config   cache.Config
	log      *zap.Logger
}

// Option configures a container at construction time.
type Option func(*Container)

// WithLogger attaches a logger passed down to dispatchers. The default is
// a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// NewContainer creates a container around one compiler backend. It builds
// the artifact store from config and registers the "cpu" and "hof"
// targets over the backend.
func NewContainer(backend target.Backend, config cache.Config, opts ...Option) (*Container, error) {
	if backend == nil {
		return nil, errors.New("di: container needs a backend")
	}

	store, err := cache.NewStore(config)
	if err != nil {
		return nil, err
	}

	registry := target.NewRegistry()
	entries := []struct {
		name  string
		entry target.Entry
	}{
		{TargetCPU, target.Entry{Backend: backend, Keyer: func(fn *sig.Function, cells []any) cache.IndexKeyer {
			return cache.NewFunctionCache(fn, cells)
		}}},
		{TargetHOF, target.Entry{Backend: backend, Keyer: func(fn *sig.Function, cells []any) cache.IndexKeyer {
			return hofcache.New(fn, cells)
		}}},
	}
	for _, e := range entries {
		if err := registry.Register(e.name, e.entry); err != nil {
			return nil, err
		}
	}

	c := &Container{
		registry: registry,
		store:    store,
		config:   config,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewContainerWithDefaults creates a container using the default store
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults(backend target.Backend, opts ...Option) (*Container, error) {
	return NewContainer(backend, cache.DefaultConfig(), opts...)
}

// Registry returns the container's target registry, for registering
// additional targets or inspecting the table.
func (c *Container) Registry() *target.Registry {
	return c.registry
}

// Store returns the singleton artifact store instance.
// This allows access to the underlying cache for advanced use cases.
func (c *Container) Store() cache.Store {
	return c.store
}

// Config returns a copy of the store configuration used by this container.
// This is useful for debugging and monitoring purposes.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewDispatcher creates a dispatcher for fn under the named target, wired
// to the container's store and logger. cells is fn's closure snapshot and
// may be nil. Caching starts disabled; callers opt in with EnableCaching.
func (c *Container) NewDispatcher(targetName string, fn *sig.Function, cells []any) (*target.Dispatcher, error) {
	entry, err := c.registry.Lookup(targetName)
	if err != nil {
		return nil, err
	}
	return target.NewDispatcher(entry, fn, cells,
		target.WithStore(c.store),
		target.WithLogger(c.log),
	)
}
