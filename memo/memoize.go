package memo

// Memoize1 wraps a pure single-argument function with a result cache.
// The first call with a given argument computes the result; later calls
// with an equal argument return the cached value without invoking fn.
func Memoize1[I1 Key, O any](fn func(I1) O, opts ...CacheOption) func(I1) O {
	memoized := memoize(
		func(args ...Key) O {
			return fn(args[0].(I1))
		},
		opts...,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// Memoize2 wraps a pure two-argument function with a result cache.
func Memoize2[I1, I2 Key, O any](fn func(I1, I2) O, opts ...CacheOption) func(I1, I2) O {
	memoized := memoize(
		func(args ...Key) O {
			return fn(args[0].(I1), args[1].(I2))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

// Memoize3 wraps a pure three-argument function with a result cache.
func Memoize3[I1, I2, I3 Key, O any](fn func(I1, I2, I3) O, opts ...CacheOption) func(I1, I2, I3) O {
	memoized := memoize(
		func(args ...Key) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

// Memoize4 wraps a pure four-argument function with a result cache.
func Memoize4[I1, I2, I3, I4 Key, O any](fn func(I1, I2, I3, I4) O, opts ...CacheOption) func(I1, I2, I3, I4) O {
	memoized := memoize(
		func(args ...Key) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}

type pair[O1, O2 any] struct {
	fst O1
	snd O2
}

// Memoize1x2 wraps a pure single-argument function returning two values,
// caching both.
func Memoize1x2[I1 Key, O1, O2 any](fn func(I1) (O1, O2), opts ...CacheOption) func(I1) (O1, O2) {
	memoized := memoize(
		func(args ...Key) pair[O1, O2] {
			v1, v2 := fn(args[0].(I1))
			return pair[O1, O2]{fst: v1, snd: v2}
		},
		opts...,
	)
	return func(i1 I1) (O1, O2) {
		p := memoized(i1)
		return p.fst, p.snd
	}
}

// Memoize2x2 wraps a pure two-argument function returning two values,
// caching both.
func Memoize2x2[I1, I2 Key, O1, O2 any](fn func(I1, I2) (O1, O2), opts ...CacheOption) func(I1, I2) (O1, O2) {
	memoized := memoize(
		func(args ...Key) pair[O1, O2] {
			v1, v2 := fn(args[0].(I1), args[1].(I2))
			return pair[O1, O2]{fst: v1, snd: v2}
		},
		opts...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := memoized(i1, i2)
		return p.fst, p.snd
	}
}

func memoize[O any](fn func(...Key) O, opts ...CacheOption) func(...Key) O {
	cache := newCache[O](opts...)
	return func(args ...Key) O {
		keys := canonicalizeAll(args)
		v, ok := cache.Load(keys)
		if !ok {
			v = fn(args...)
			cache.Store(keys, v)
		}
		return v
	}
}
