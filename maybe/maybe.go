package maybe

import "fmt"

// Maybe represents an optional value of type T without a nil sentinel.
// The zero value is None, so a Maybe embedded in a struct is absent until
// explicitly set. Values are immutable after construction.
type Maybe[T any] struct {
	value T
	some  bool
}

// Some wraps a present value. The value is stored as given: wrapping an
// empty Maybe produces a present Maybe holding an empty one, never a
// flattened None.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, some: true}
}

// None returns the empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether the Maybe holds a value.
func (m Maybe[T]) IsSome() bool { return m.some }

// IsNone reports whether the Maybe is empty.
func (m Maybe[T]) IsNone() bool { return !m.some }

// Get returns the held value and whether it was present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.some
}

// MustGet returns the held value, panicking with *EmptyValueAccessError
// when the Maybe is empty. Forcing an empty Maybe is a programmer error,
// not a recoverable condition; use Get or GetOrElse for the latter.
func (m Maybe[T]) MustGet() T {
	if !m.some {
		panic(&EmptyValueAccessError{TypeName: fmt.Sprintf("%T", m.value)})
	}
	return m.value
}

// GetOrElse returns the held value if present, otherwise def.
func (m Maybe[T]) GetOrElse(def T) T {
	if !m.some {
		return def
	}
	return m.value
}

// GetOrElseFn returns the held value if present, otherwise the result of
// def. The thunk is invoked only on an empty Maybe, so an expensive
// default is never computed eagerly.
func (m Maybe[T]) GetOrElseFn(def func() T) T {
	if !m.some {
		return def()
	}
	return m.value
}

// Filter empties the Maybe when pred rejects the held value. An empty
// Maybe stays empty and pred is not invoked.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.some && !pred(m.value) {
		return None[T]()
	}
	return m
}

// OrElse returns m if it holds a value, otherwise alt.
func (m Maybe[T]) OrElse(alt Maybe[T]) Maybe[T] {
	if m.some {
		return m
	}
	return alt
}

func (m Maybe[T]) String() string {
	if !m.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Map applies f to the held value. On an empty Maybe it returns None
// without invoking f; this is how absence propagates through a chain
// without branching at every step.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.some {
		return None[U]()
	}
	return Some(f(m.value))
}

// AndThen chains a computation that may itself come up empty. On an empty
// Maybe it returns None without invoking f. The result of f is returned
// as is, so a None produced by f short-circuits the rest of the chain.
func AndThen[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.some {
		return None[U]()
	}
	return f(m.value)
}

// Match reduces the Maybe to a single value by applying exactly one of
// the two branches.
func Match[T, U any](m Maybe[T], onSome func(T) U, onNone func() U) U {
	if m.some {
		return onSome(m.value)
	}
	return onNone()
}
