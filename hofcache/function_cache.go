package hofcache

import (
	"github.com/goliatone/go-jit-cache/cache"
	"github.com/goliatone/go-jit-cache/sig"
)

// FunctionCache derives cache keys for functions that take other compiled
// functions as arguments or capture them in their closure. It embeds the
// default derivation and rewrites its output: function references are keyed
// by the stable identity of their source definition instead of by instance,
// so functionally equivalent higher-order calls share a cache entry.
type FunctionCache struct {
	*cache.FunctionCache
}

// New binds a higher-order derivation to a function handle and its closure
// snapshot. The snapshot may be nil.
func New(fn *sig.Function, cells []any) *FunctionCache {
	return &FunctionCache{FunctionCache: cache.NewFunctionCache(fn, cells)}
}

// IndexKey derives the cache key for one specialization.
//
// The default key is computed first, so signatures without function
// references anywhere in scope key exactly as they would under the default
// derivation. When the signature embeds a function reference at any depth,
// the signature element is replaced with the identity-form rendering. When
// the closure snapshot holds function references, the closure hash is
// recomputed over the snapshot with references rewritten to identities; the
// code hash element is kept from the default key.
//
// A reference that resolves to no function fails derivation with a
// sig.MalformedDescriptorError. A weaker key is never substituted.
func (c *FunctionCache) IndexKey(s sig.Signature, codegen cache.CodegenContext) (cache.Key, error) {
	key, err := c.FunctionCache.IndexKey(s, codegen)
	if err != nil {
		return cache.Key{}, err
	}

	if s.HasFunctionRef() {
		rendered, err := rewriteSignature(s)
		if err != nil {
			return cache.Key{}, err
		}
		key.Signature = rendered
	}

	cells, found, err := rewriteCells(c.Cells())
	if err != nil {
		return cache.Key{}, err
	}
	if found {
		digest, err := cache.CellsDigest(cells)
		if err != nil {
			return cache.Key{}, err
		}
		key.Code.ClosureHash = digest
	}

	return key, nil
}
