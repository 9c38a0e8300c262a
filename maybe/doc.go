// Package maybe provides an optional-value container that makes absence a
// first-class, representable state instead of a nil sentinel.
//
// A Maybe[T] is in exactly one of two states: Some(v) or None. Transformations
// never observe both states and never invoke their callbacks on an empty
// container, so absence propagates through a chain of Map/AndThen calls
// without explicit branching:
//
//	upper := maybe.Map(lookupNickname(id), strings.ToUpper) // still Maybe, never nil
//
// Absence is not an error. Converting it into one is an explicit step
// (see result.FromMaybe), which preserves the information about *why* a
// value is missing instead of silently coercing it away.
package maybe
