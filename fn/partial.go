package fn

// Partial2 fixes the first argument of a two-argument function:
// Partial2(f, a)(b) == f(a, b). Unlike currying, partial application does
// not wait for the full arity one argument at a time; it fixes a prefix
// and leaves an ordinary function of the rest.
func Partial2[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of a three-argument function.
func Partial3[A, B, C, D any](f func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D {
		return f(a, b, c)
	}
}

// Partial2of3 fixes the first two arguments of a three-argument function.
func Partial2of3[A, B, C, D any](f func(A, B, C) D, a A, b B) func(C) D {
	return func(c C) D {
		return f(a, b, c)
	}
}

// Partial4 fixes the first argument of a four-argument function.
func Partial4[A, B, C, D, E any](f func(A, B, C, D) E, a A) func(B, C, D) E {
	return func(b B, c C, d D) E {
		return f(a, b, c, d)
	}
}
