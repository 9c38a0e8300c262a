package memo

import "fmt"

// Key is the constraint on memoized arguments: a value must either be
// comparable or implement fmt.Stringer. Stringers are canonicalized via
// String(), everything else is used as a map key directly; passing a
// value that is neither is a misuse and panics inside the backing map.
type Key any

// CanonKey is a canonicalized Key: a comparable value, or the string
// rendering of a Stringer.
type CanonKey any

func canonicalize(k Key) CanonKey {
	if stringer, ok := k.(fmt.Stringer); ok {
		return stringer.String()
	}
	return k
}

func canonicalizeAll(args []Key) []CanonKey {
	keys := make([]CanonKey, len(args))
	for i, arg := range args {
		keys[i] = canonicalize(arg)
	}
	return keys
}
