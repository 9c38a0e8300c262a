package fn

// Curry2 turns a two-argument function into a chain of single-argument
// applications: Curry2(f)(a)(b) == f(a, b). Each step closes over the
// arguments supplied so far and never mutates them. Arity is enforced by
// the type system: every step takes exactly one argument, so batched or
// surplus application does not compile.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of single-argument
// applications: Curry3(f)(a)(b)(c) == f(a, b, c).
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Curry4 turns a four-argument function into a chain of single-argument
// applications.
func Curry4[A, B, C, D, E any](f func(A, B, C, D) E) func(A) func(B) func(C) func(D) E {
	return func(a A) func(B) func(C) func(D) E {
		return func(b B) func(C) func(D) E {
			return func(c C) func(D) E {
				return func(d D) E {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Uncurry2 inverts Curry2, turning a chain of single-argument
// applications back into a function taking both arguments up front.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
