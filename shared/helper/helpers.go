package helper

import (
	"fmt"
)

// As asserts v to the expected type T, reporting whether the assertion held.
func As[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// MustAs is the panic-on-failure variant of As.
// Use when the dynamic type is guaranteed by construction (e.g., values a
// component stored into its own untyped map).
func MustAs[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("helper: unexpected type: %T", v))
	}
	return t
}

// AsOf safely asserts the result of a comma-ok getter to the expected type T.
// The result is ok only when both the getter and the assertion succeed.
func AsOf[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
