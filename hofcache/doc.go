// Package hofcache derives cache keys for higher-order compiled functions.
//
// # Overview
//
// The default derivation in the cache package spells function references in
// instance form, so a function compiled twice produces two distinct handles
// and any signature embedding them produces two distinct keys. For
// higher-order call patterns that is exactly wrong: passing either instance
// of the same source function should hit the same compiled artifact.
//
// FunctionCache fixes this by rewriting the default key:
//
//   - the signature element is re-rendered with every function reference,
//     at any nesting depth, replaced by the stable (module, qualname)
//     identity of the function it resolves to
//   - when the closure snapshot captures function references, the closure
//     hash is recomputed over the snapshot with references rewritten to
//     identities, while the code hash element is preserved from the
//     default key
//
// Signatures and closures without function references are left untouched,
// so keys for ordinary functions are byte-for-byte identical to the default
// derivation's.
//
// # Usage
//
// Dispatchers created under the higher-order target name install this
// derivation when caching is enabled:
//
//	keyer := hofcache.New(fn, cells)
//	key, err := keyer.IndexKey(signature, codegen)
//
// # Known Limitation
//
// Two instances of the same source function are interchangeable under this
// derivation even when they were specialized differently, because the key
// carries only the (module, qualname) pair and no body hash for embedded
// references. Qualified names are assumed unique per process.
//
// # Failure Modes
//
// A descriptor or cell that claims to reference a function but resolves to
// none fails derivation with sig.MalformedDescriptorError, and a closure
// snapshot that cannot be canonically serialized fails it with
// cache.SerializationError. Errors always propagate; derivation never
// falls back to a weaker key.
package hofcache
