package testsupport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-jit-cache/sig"
	"github.com/goliatone/go-jit-cache/target"
)

func TestFunctionBuilders(t *testing.T) {
	first := SquareFunction()
	second := SquareFunction()

	if first.Identity() != second.Identity() {
		t.Error("expected both instances to share an identity")
	}
	if first.InstanceID == second.InstanceID {
		t.Error("expected fresh instances to have distinct instance ids")
	}
	if SquareFunction().Identity() == CubeFunction().Identity() {
		t.Error("expected distinct definitions to have distinct identities")
	}
}

func TestStubBackend_Compile(t *testing.T) {
	backend := NewStubBackend()
	fn := SquareFunction()
	req := target.CompileRequest{Function: fn, Signature: sig.NewSignature(nil, sig.Int64)}

	ov, err := backend.Compile(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(ov.Artifact) != "compiled m.square for (int64)" {
		t.Errorf("unexpected artifact %q", ov.Artifact)
	}
	if backend.Compiles() != 1 {
		t.Errorf("expected one compile, got %d", backend.Compiles())
	}
}

func TestStubBackend_Err(t *testing.T) {
	wantErr := errors.New("lowering failed")
	backend := NewStubBackend()
	backend.Err = wantErr

	_, err := backend.Compile(context.Background(), target.CompileRequest{
		Function:  SquareFunction(),
		Signature: sig.NewSignature(nil, sig.Int64),
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected configured error, got %v", err)
	}
	if backend.Compiles() != 0 {
		t.Errorf("expected no compiles counted, got %d", backend.Compiles())
	}
}

func TestStubBackend_LatencyRespectsCancellation(t *testing.T) {
	backend := NewStubBackend()
	backend.Latency = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backend.Compile(ctx, target.CompileRequest{
		Function:  SquareFunction(),
		Signature: sig.NewSignature(nil, sig.Int64),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCodegen(t *testing.T) {
	if Codegen().Magic() != DefaultMagic {
		t.Errorf("expected %q, got %q", DefaultMagic, Codegen().Magic())
	}
	if NewStubBackend().Codegen().Magic() != DefaultMagic {
		t.Error("expected the stub backend to report the default magic")
	}
}
