// Package sig models call signatures and the type descriptors they are made
// of. Descriptors form a closed sum: scalars, containers, and references to
// other compiled functions. The cache packages walk these trees when deriving
// cache keys.
package sig

import (
	"fmt"
	"strings"
)

// Type is a type descriptor appearing in a call signature. The set of
// implementations is closed: Scalar, FunctionRef, Tuple, and List.
type Type interface {
	fmt.Stringer
	isType()
}

// Scalar is an opaque leaf type named by its canonical spelling. The
// predeclared constants cover the usual numeric tower; callers can mint
// their own with Scalar("intp").
type Scalar string

const (
	Bool       Scalar = "bool"
	Int8       Scalar = "int8"
	Int16      Scalar = "int16"
	Int32      Scalar = "int32"
	Int64      Scalar = "int64"
	Uint8      Scalar = "uint8"
	Uint16     Scalar = "uint16"
	Uint32     Scalar = "uint32"
	Uint64     Scalar = "uint64"
	Float32    Scalar = "float32"
	Float64    Scalar = "float64"
	Complex64  Scalar = "complex64"
	Complex128 Scalar = "complex128"
	String     Scalar = "string"
)

func (s Scalar) String() string { return string(s) }

func (Scalar) isType() {}

// Tuple is a heterogeneous ordered container of descriptors.
type Tuple []Type

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, el := range t {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (Tuple) isType() {}

// List is a homogeneous container with a single element type.
type List struct {
	Elem Type
}

func (l List) String() string {
	if l.Elem == nil {
		return "[]"
	}
	return "[" + l.Elem.String() + "]"
}

func (List) isType() {}

// FunctionRef marks a position whose value is another compiled function. It
// carries either the function handle directly or a provider that is asked
// for its current handle when the reference is resolved.
type FunctionRef struct {
	fn       *Function
	provider FunctionProvider
}

// Ref builds a descriptor around a function handle.
func Ref(fn *Function) FunctionRef {
	return FunctionRef{fn: fn}
}

// ProviderRef builds a descriptor around a provider, typically a dispatcher.
// The provider is consulted at resolve time, so the descriptor follows
// whatever function the provider currently wraps.
func ProviderRef(p FunctionProvider) FunctionRef {
	return FunctionRef{provider: p}
}

// Resolve returns the referenced function handle. A descriptor that claims
// to be function-like but yields no handle is malformed; derivation must
// fail on it rather than degrade to a weaker key.
func (r FunctionRef) Resolve() (*Function, error) {
	if r.fn != nil {
		return r.fn, nil
	}
	if r.provider != nil {
		if fn := r.provider.Function(); fn != nil {
			return fn, nil
		}
	}
	return nil, &MalformedDescriptorError{Descriptor: r.String()}
}

// String renders the instance form of the reference: two references are
// spelled the same only when they resolve to the same function instance.
func (r FunctionRef) String() string {
	if r.fn != nil {
		return "function(" + r.fn.InstanceID.String() + ")"
	}
	if r.provider != nil {
		if fn := r.provider.Function(); fn != nil {
			return "function(" + fn.InstanceID.String() + ")"
		}
	}
	return "function(invalid)"
}

func (FunctionRef) isType() {}

// HasFunctionRef reports whether t contains a FunctionRef at any depth.
func HasFunctionRef(t Type) bool {
	switch v := t.(type) {
	case FunctionRef:
		return true
	case Tuple:
		for _, el := range v {
			if HasFunctionRef(el) {
				return true
			}
		}
		return false
	case List:
		return v.Elem != nil && HasFunctionRef(v.Elem)
	default:
		return false
	}
}

// MalformedDescriptorError reports a function-like descriptor that resolves
// to no function and therefore cannot yield a stable identity.
type MalformedDescriptorError struct {
	Descriptor string
}

func (e *MalformedDescriptorError) Error() string {
	return "sig: descriptor " + e.Descriptor + " resolves to no function"
}
