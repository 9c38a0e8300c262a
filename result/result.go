package result

import (
	"fmt"

	"github.com/on-the-ground/fp_ive_go/maybe"
)

// Result represents either a successful value of type T or a failure
// carrying an error. It is in exactly one of the two states; values are
// immutable after construction.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil error cannot encode failure, so Err(nil)
// panics instead of constructing an ambiguous value.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// FromTuple adapts Go's (T, error) return convention: a nil error yields
// Ok(value), a non-nil error yields Err and discards value.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result holds a successful value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result holds a failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Error returns the held error, or nil on an Ok Result.
func (r Result[T]) Error() error { return r.err }

// Get returns the held value and error in Go's native convention.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// MustGet returns the successful value, panicking on a failed Result.
// Forcing a failed Result is a programmer error; branch with Fold or
// Get when failure is an expected outcome.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(fmt.Errorf("result: forced access on failed Result: %w", r.err))
	}
	return r.value
}

// UnwrapOr returns the successful value, or def on failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the successful value, or the result of applying
// def to the held error. def is invoked only on failure.
func (r Result[T]) UnwrapOrElse(def func(error) T) T {
	if r.err != nil {
		return def(r.err)
	}
	return r.value
}

// MapErr transforms the held error, passing an Ok Result through
// unchanged. f is never invoked on success. Mapping a failure to a nil
// error is a misuse and panics: a failed Result cannot become Ok by
// erasing its error.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the successful value. On a failed Result the error is
// passed through and f is not invoked.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// AndThen chains a computation that may itself fail. The first failure
// in a chain short-circuits everything after it.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Fold reduces the Result to a single value by applying exactly one of
// the two branches.
func Fold[T, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// FromMaybe converts an optional value into a Result, supplying the error
// that explains absence. The conversion is always explicit so the reason a
// value is missing is never lost by accident.
func FromMaybe[T any](m maybe.Maybe[T], errIfNone error) Result[T] {
	if v, ok := m.Get(); ok {
		return Ok(v)
	}
	return Err[T](errIfNone)
}

// ToMaybe converts a Result into an optional value, discarding the error.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if r.err != nil {
		return maybe.None[T]()
	}
	return maybe.Some(r.value)
}
