// Package testsupport provides deterministic builders for exercising the
// compilation cache: function handles, a counting stub backend, and a
// static codegen context. The builders avoid *testing.T so examples can
// reuse them.
package testsupport

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goliatone/go-jit-cache/cache"
	"github.com/goliatone/go-jit-cache/sig"
	"github.com/goliatone/go-jit-cache/target"
)

// StaticCodegen is a cache.CodegenContext with a fixed magic string.
type StaticCodegen struct {
	MagicString string
}

// Magic returns the fixed fingerprint.
func (c StaticCodegen) Magic() string { return c.MagicString }

// DefaultMagic is the codegen fingerprint the fixtures use.
const DefaultMagic = "test-arch::sse2"

// Codegen returns the codegen context the stub backend reports.
func Codegen() cache.CodegenContext {
	return StaticCodegen{MagicString: DefaultMagic}
}

// SquareFunction returns a fresh instance of the m.square definition.
// Calling it twice yields two handles with equal identities and distinct
// instance ids, which is the situation the higher-order deriver collapses.
func SquareFunction() *sig.Function {
	return sig.NewFunction("m", "square", []byte("square body"))
}

// CubeFunction returns a fresh instance of the m.cube definition.
func CubeFunction() *sig.Function {
	return sig.NewFunction("m", "cube", []byte("cube body"))
}

// ApplyFunction returns a fresh instance of the m.apply definition, the
// usual higher-order subject.
func ApplyFunction() *sig.Function {
	return sig.NewFunction("m", "apply", []byte("apply body"))
}

// StubBackend is a target.Backend that stamps deterministic artifacts
// instead of generating code. It counts compilations, and can simulate
// lowering latency or a failing backend.
type StubBackend struct {
	// BackendName is reported by Name. Defaults to "stub".
	BackendName string

	// MagicString is the codegen fingerprint. Defaults to DefaultMagic.
	MagicString string

	// Latency delays each compilation, respecting context cancellation.
	Latency time.Duration

	// Err, when set, fails every compilation.
	Err error

	compiles atomic.Int64
}

// NewStubBackend returns a stub backend with the default name and magic.
func NewStubBackend() *StubBackend {
	return &StubBackend{BackendName: "stub", MagicString: DefaultMagic}
}

// Name returns the backend name.
func (b *StubBackend) Name() string { return b.BackendName }

// Codegen returns the backend's codegen context.
func (b *StubBackend) Codegen() cache.CodegenContext {
	return StaticCodegen{MagicString: b.MagicString}
}

// Compile stamps an artifact naming the function and signature it was
// requested for.
func (b *StubBackend) Compile(ctx context.Context, req target.CompileRequest) (*target.Overload, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if b.Latency > 0 {
		select {
		case <-time.After(b.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	b.compiles.Add(1)

	artifact := fmt.Sprintf("compiled %s.%s for %s", req.Function.Module, req.Function.Qualname, req.Signature)
	return &target.Overload{Signature: req.Signature, Artifact: []byte(artifact)}, nil
}

// Compiles reports how many compilations reached the backend.
func (b *StubBackend) Compiles() int64 { return b.compiles.Load() }
