package fn

// Identity returns its argument unchanged. It is the left and right
// identity of Compose and the result of an empty Pipe.
func Identity[T any](v T) T { return v }

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Compose is right-to-left composition: Compose(f, g)(x) == f(g(x)),
// so g is applied first.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe chains same-typed functions left to right:
// Pipe(f, g, h)(x) == h(g(f(x))). With no functions it is the identity,
// with one it behaves exactly as that function. For chains whose
// intermediate types differ, use Pipe2 through Pipe5, which reject
// mismatched links at compile time.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// Pipe2 chains two functions left to right: Pipe2(f, g)(x) == g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 chains three functions left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Pipe4 chains four functions left to right.
func Pipe4[A, B, C, D, E any](
	f func(A) B,
	g func(B) C,
	h func(C) D,
	i func(D) E,
) func(A) E {
	return func(a A) E {
		return i(h(g(f(a))))
	}
}

// Pipe5 chains five functions left to right.
func Pipe5[A, B, C, D, E, F any](
	f func(A) B,
	g func(B) C,
	h func(C) D,
	i func(D) E,
	j func(E) F,
) func(A) F {
	return func(a A) F {
		return j(i(h(g(f(a)))))
	}
}
