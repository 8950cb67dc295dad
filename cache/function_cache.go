package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/goliatone/go-jit-cache/sig"
	"github.com/vmihailenco/msgpack/v5"
)

// IndexKeyer derives the cache key a compiled specialization is stored
// under. A dispatcher installs one when caching is enabled.
type IndexKeyer interface {
	IndexKey(s sig.Signature, codegen CodegenContext) (Key, error)
}

// FunctionCache derives cache keys for one function's compiled
// specializations using the default scheme: the canonical signature
// encoding, the codegen magic, and a CodeID hashing the function body and
// its captured cells. It is the baseline other derivations extend.
type FunctionCache struct {
	fn    *sig.Function
	cells []any
}

// NewFunctionCache binds a derivation to a function handle and the ordered
// snapshot of values it captured at definition time. The snapshot may be
// nil for functions without a closure.
func NewFunctionCache(fn *sig.Function, cells []any) *FunctionCache {
	return &FunctionCache{fn: fn, cells: cells}
}

// Function returns the bound function handle.
func (c *FunctionCache) Function() *sig.Function { return c.fn }

// Cells returns the bound closure snapshot.
func (c *FunctionCache) Cells() []any { return c.cells }

// IndexKey derives the default cache key for one specialization. The
// signature element is the signature's canonical rendering, so keys are
// instance-specific wherever the signature embeds function references.
func (c *FunctionCache) IndexKey(s sig.Signature, codegen CodegenContext) (Key, error) {
	if c.fn == nil {
		return Key{}, ErrNoFunction
	}

	var magic string
	if codegen != nil {
		magic = codegen.Magic()
	}

	closureHash, err := CellsDigest(c.cells)
	if err != nil {
		return Key{}, err
	}

	return Key{
		Signature: s.String(),
		Magic:     magic,
		Code: CodeID{
			CodeHash:    DigestBytes(c.fn.Code),
			ClosureHash: closureHash,
		},
	}, nil
}

// DigestBytes returns the hex encoded sha256 digest of b.
func DigestBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// CellsDigest canonically serializes a closure snapshot and digests it. Map
// keys are sorted during encoding so equal snapshots digest equally
// regardless of construction order. An empty snapshot digests to the digest
// of no bytes.
//
// Values must be serializable by msgpack; functions, channels, and similar
// runtime-only values cause a SerializationError. Opaque handles should
// enter snapshots as *sig.Function values so the higher-order derivation
// can rewrite them before this digest runs.
func CellsDigest(cells []any) (string, error) {
	if len(cells) == 0 {
		return DigestBytes(nil), nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(cells); err != nil {
		return "", &SerializationError{Cause: err}
	}

	return DigestBytes(buf.Bytes()), nil
}
