package cache

import "errors"

// ErrInvalidResultType is returned when a cached value does not match the
// type the caller asked for.
var ErrInvalidResultType = errors.New("cache: cached value has unexpected type")

// ErrNoFunction is returned when a key derivation is attempted without a
// function handle bound to the cache.
var ErrNoFunction = errors.New("cache: no function bound")

// SerializationError reports a closure snapshot that could not be
// canonically serialized. Derivation fails with it rather than degrading to
// a key that ignores part of the closure.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	if e.Cause == nil {
		return "cache: closure serialization failed"
	}
	return "cache: closure serialization failed: " + e.Cause.Error()
}

func (e *SerializationError) Unwrap() error { return e.Cause }
