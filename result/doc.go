// Package result provides a success/failure container with an explicit
// error payload.
//
// A Result[T] is in exactly one of two states: Ok(v) or Err(err). Map and
// AndThen never invoke their callbacks on a failed Result, so the first
// failure in a chain short-circuits everything after it and surfaces at
// the end via Fold, Get, or UnwrapOr.
//
// FromTuple bridges Go's (T, error) convention into the container, and
// Get bridges back out, so Result chains compose with ordinary fallible
// functions at both ends.
package result
