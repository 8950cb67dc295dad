package hofcache

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-jit-cache/sig"
)

// renderIdentityForm renders a descriptor with every function reference
// replaced by the stable identity of the function it resolves to. Every
// other descriptor keeps its canonical spelling, so the identity form of a
// reference-free descriptor equals its default rendering.
func renderIdentityForm(t sig.Type) (string, error) {
	switch v := t.(type) {
	case sig.FunctionRef:
		fn, err := v.Resolve()
		if err != nil {
			return "", err
		}
		return fn.Identity().String(), nil
	case sig.Tuple:
		parts := make([]string, len(v))
		for i, el := range v {
			rendered, err := renderIdentityForm(el)
			if err != nil {
				return "", err
			}
			parts[i] = rendered
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	case sig.List:
		if v.Elem == nil {
			return v.String(), nil
		}
		inner, err := renderIdentityForm(v.Elem)
		if err != nil {
			return "", err
		}
		return "[" + inner + "]", nil
	default:
		return t.String(), nil
	}
}

// rewriteSignature renders the identity form of a signature, shaped like
// sig.Signature.String so reference-free signatures render identically.
func rewriteSignature(s sig.Signature) (string, error) {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		rendered, err := renderIdentityForm(a)
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	out := "(" + strings.Join(parts, ", ") + ")"
	if s.Return != nil {
		ret, err := renderIdentityForm(s.Return)
		if err != nil {
			return "", err
		}
		out += " -> " + ret
	}
	return out, nil
}

// rewriteCells returns a copy of a closure snapshot with every function
// reference replaced by its stable identity, and reports whether any
// reference was found. The input snapshot is never mutated.
func rewriteCells(cells []any) ([]any, bool, error) {
	out := make([]any, len(cells))
	found := false
	for i, cell := range cells {
		v, f, err := rewriteCell(cell)
		if err != nil {
			return nil, false, err
		}
		out[i] = v
		found = found || f
	}
	return out, found, nil
}

func rewriteCell(v any) (any, bool, error) {
	switch x := v.(type) {
	case *sig.Function:
		if x == nil {
			return nil, false, &sig.MalformedDescriptorError{Descriptor: "function(<nil>)"}
		}
		return x.Identity(), true, nil
	case sig.FunctionRef:
		fn, err := x.Resolve()
		if err != nil {
			return nil, false, err
		}
		return fn.Identity(), true, nil
	case sig.FunctionProvider:
		fn := x.Function()
		if fn == nil {
			return nil, false, &sig.MalformedDescriptorError{Descriptor: fmt.Sprintf("provider(%T)", x)}
		}
		return fn.Identity(), true, nil
	case []any:
		out := make([]any, len(x))
		found := false
		for i, el := range x {
			rewritten, f, err := rewriteCell(el)
			if err != nil {
				return nil, false, err
			}
			out[i] = rewritten
			found = found || f
		}
		return out, found, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		found := false
		for k, el := range x {
			rewritten, f, err := rewriteCell(el)
			if err != nil {
				return nil, false, err
			}
			out[k] = rewritten
			found = found || f
		}
		return out, found, nil
	default:
		return v, false, nil
	}
}
