// Package cache provides cache key derivation and artifact storage
// interfaces for compiled function pipelines.
//
// # Overview
//
// This package exports two main surfaces and their default implementations:
//
//   - IndexKeyer / FunctionCache: derives the cache key a compiled
//     specialization is stored under
//   - Store: a generic read-through interface for artifact storage
//
// The cache package is designed to work with dispatchers that compile
// functions on demand and want compiled artifacts reused whenever a key
// matches, while maintaining type safety through generics.
//
// # Key Structure
//
// A Key has three elements, and equal keys mean substitutable artifacts:
//
//   - Signature: the canonical rendering of the call signature the
//     specialization was compiled for
//   - Magic: the codegen environment fingerprint, passed through opaquely
//     from a CodegenContext
//   - Code: a CodeID pairing a sha256 over the function body with a sha256
//     over the canonically serialized closure snapshot
//
// The default derivation in FunctionCache renders signatures in instance
// form: a function reference embedded in a signature is spelled with the
// referenced instance id, so two instances of the same source function
// produce different keys. The hofcache package replaces that behavior with
// identity-based keys for higher-order call patterns.
//
// # Basic Usage
//
// Bind a derivation to a function handle and ask it for keys:
//
//	keyer := cache.NewFunctionCache(fn, nil)
//	key, err := keyer.IndexKey(sig.NewSignature(nil, sig.Int64), codegen)
//
// For artifact caching, pair a key with a Store implementation:
//
//	overload, err := cache.GetOrFetch(ctx, store, key.String(), func(ctx context.Context) (*target.Overload, error) {
//		return backend.Compile(ctx, req)
//	})
//
// # Closure Serialization
//
// Closure snapshots are serialized with msgpack using sorted map keys, so
// structurally equal snapshots digest equally regardless of map insertion
// order. Serialization is strict: a snapshot value msgpack cannot encode
// fails derivation with a SerializationError instead of being silently
// skipped. A key that ignored part of the closure would alias
// specializations that must stay distinct.
//
// # Error Handling
//
// Derivation never degrades: every failure path returns an error and no
// key. Storage lookups are equally strict; GetOrFetch returns
// ErrInvalidResultType when a cached value does not match the requested
// type rather than handing back a corrupted artifact.
//
// # See Also
//
// For identity-rewriting key derivation used by higher-order targets, see
// the hofcache package. For the sturdyc-backed store implementation, see
// NewStore and the Config type in this package.
package cache
