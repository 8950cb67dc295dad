package sig

import "strings"

// Signature is the call signature a function is specialized for: one
// descriptor per argument position plus an optional return descriptor.
// Signatures are value types and are not mutated after construction.
type Signature struct {
	Args   []Type
	Return Type
}

// NewSignature builds a signature from a return descriptor and argument
// descriptors, in call order. A nil return descriptor means the return type
// is inferred and does not participate in the signature.
func NewSignature(ret Type, args ...Type) Signature {
	return Signature{Args: args, Return: ret}
}

// String renders the canonical form of the signature. The rendering is
// deterministic and is what the default key derivation embeds in cache keys.
func (s Signature) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	out := "(" + strings.Join(parts, ", ") + ")"
	if s.Return != nil {
		out += " -> " + s.Return.String()
	}
	return out
}

// HasFunctionRef reports whether any argument or the return descriptor
// contains a function reference at any depth.
func (s Signature) HasFunctionRef() bool {
	for _, a := range s.Args {
		if HasFunctionRef(a) {
			return true
		}
	}
	return s.Return != nil && HasFunctionRef(s.Return)
}
