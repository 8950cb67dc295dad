package sig

import "testing"

func TestSignature_String(t *testing.T) {
	fn := NewFunction("m", "square", []byte("square body"))

	tests := []struct {
		name string
		sig  Signature
		want string
	}{
		{
			name: "no arguments",
			sig:  NewSignature(nil),
			want: "()",
		},
		{
			name: "arguments only",
			sig:  NewSignature(nil, Int64, Float64),
			want: "(int64, float64)",
		},
		{
			name: "arguments and return",
			sig:  NewSignature(Float64, Int64, Int64),
			want: "(int64, int64) -> float64",
		},
		{
			name: "nested containers",
			sig:  NewSignature(nil, Tuple{Int64, List{Elem: Bool}}),
			want: "((int64, [bool]))",
		},
		{
			name: "function reference argument",
			sig:  NewSignature(nil, Int64, Ref(fn)),
			want: "(int64, function(" + fn.InstanceID.String() + "))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSignature_HasFunctionRef(t *testing.T) {
	fn := NewFunction("m", "square", []byte("square body"))

	tests := []struct {
		name string
		sig  Signature
		want bool
	}{
		{"plain", NewSignature(Float64, Int64, Int64), false},
		{"reference in argument", NewSignature(nil, Ref(fn), Int64), true},
		{"reference nested in argument", NewSignature(nil, Tuple{Int64, Ref(fn)}), true},
		{"reference in return position", NewSignature(Ref(fn), Int64), true},
		{"no return descriptor", NewSignature(nil, Int64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.HasFunctionRef(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
