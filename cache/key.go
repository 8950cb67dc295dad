package cache

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeySeparator defines the delimiter used between cache key elements when a
// key is flattened to its storage form.
const KeySeparator = "::"

// CodeID is the trailing element of a cache key: a content hash over the
// function's generated code paired with a digest of its captured closure
// state.
type CodeID struct {
	CodeHash    string
	ClosureHash string
}

// Key identifies one compiled specialization of a function. Keys are
// comparable; two specializations with equal keys are substitutable, so
// every input that changes compilation output must be reflected in one of
// the elements.
//
// Signature carries the canonical encoding of the call signature the
// specialization was compiled for. Magic carries the codegen environment
// fingerprint and is treated as opaque. Code carries the content hashes.
type Key struct {
	Signature string
	Magic     string
	Code      CodeID
}

// String flattens the key to the form it is stored under.
func (k Key) String() string {
	return strings.Join([]string{k.Signature, k.Magic, k.Code.CodeHash, k.Code.ClosureHash}, KeySeparator)
}

// Fingerprint returns a short stable hash of the key, cheap enough to tag
// log entries and metrics with. It is not the storage key.
func (k Key) Fingerprint() uint64 {
	return xxhash.Sum64String(k.String())
}

// CodegenContext describes the code generation environment a key must
// discriminate on. Magic returns a stable fingerprint covering things like
// the target triple, CPU features, and compiler flags; equal fingerprints
// mean artifacts are interchangeable across processes.
type CodegenContext interface {
	Magic() string
}
