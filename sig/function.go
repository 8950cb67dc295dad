package sig

import "github.com/google/uuid"

// Function is the handle for one function instance known to the pipeline.
// Module and Qualname locate the source definition; InstanceID distinguishes
// separately constructed instances of the same definition; Code holds the
// generated body the cache hashes.
type Function struct {
	Module     string
	Qualname   string
	InstanceID uuid.UUID
	Code       []byte
}

// NewFunction builds a handle with a fresh instance id.
func NewFunction(module, qualname string, code []byte) *Function {
	return &Function{
		Module:     module,
		Qualname:   qualname,
		InstanceID: uuid.New(),
		Code:       code,
	}
}

// Identity returns the stable identity of the source definition. Two
// instances of the same definition share an identity even though their
// instance ids differ.
func (f *Function) Identity() Identity {
	return Identity{Module: f.Module, Qualname: f.Qualname}
}

// Identity names a function by where it is defined rather than by which
// instance wraps it. Equal identities are treated as the same function for
// caching purposes, regardless of the instances involved.
type Identity struct {
	Module   string `msgpack:"module" json:"module"`
	Qualname string `msgpack:"qualname" json:"qualname"`
}

func (i Identity) String() string {
	return `("` + i.Module + `", "` + i.Qualname + `")`
}

// FunctionProvider is anything that wraps a function handle, such as a
// dispatcher. Providers let references follow the wrapper instead of
// pinning a handle at construction time.
type FunctionProvider interface {
	Function() *Function
}
