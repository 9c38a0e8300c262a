package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTrieCache_BasicUsage(t *testing.T) {
	cache := newTrieCache[string](0, zap.NewNop())

	cache.Store([]CanonKey{"a", "b", "c"}, "final")

	val, ok := cache.Load([]CanonKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = cache.Load([]CanonKey{"a", "b", "x"})
	assert.False(t, ok)

	// overwrite existing
	cache.Store([]CanonKey{"a", "b", "c"}, "updated")
	val, ok = cache.Load([]CanonKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrieCache_MixedKeyTypes(t *testing.T) {
	cache := newTrieCache[int](0, zap.NewNop())

	cache.Store([]CanonKey{1, "two", true}, 42)

	val, ok := cache.Load([]CanonKey{1, "two", true})
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	// int 1 and string "1" are distinct keys
	cache.Store([]CanonKey{"1"}, 7)
	_, ok = cache.Load([]CanonKey{1})
	assert.False(t, ok)
}

func TestTrieCache_EmptyKeyPathPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty key path, but didn't panic")
		}
	}()
	cache := newTrieCache[int](0, zap.NewNop())
	cache.Load([]CanonKey{})
}

func TestTrieCache_RotationDropsOldestGeneration(t *testing.T) {
	cache := newTrieCache[int](1, zap.NewNop())

	cache.Store([]CanonKey{"a"}, 1)

	// hits the bound: rotation, then "b" lands in the fresh generation
	cache.Store([]CanonKey{"b"}, 2)

	_, ok := cache.Load([]CanonKey{"a"}) // survives as fallback
	assert.True(t, ok)

	// second rotation replaces the generation holding "a"
	cache.Store([]CanonKey{"c"}, 3)

	_, ok = cache.Load([]CanonKey{"a"})
	assert.False(t, ok)
	_, ok = cache.Load([]CanonKey{"b"})
	assert.True(t, ok)
	_, ok = cache.Load([]CanonKey{"c"})
	assert.True(t, ok)
}

func TestCanonicalize_StringerUsesStringForm(t *testing.T) {
	keys := canonicalizeAll([]Key{stamp{"v1"}, 3})
	assert.Equal(t, []CanonKey{"v1", 3}, keys)
}

type stamp struct{ tag string }

func (s stamp) String() string { return s.tag }

func TestFingerprint(t *testing.T) {
	assert.Equal(t,
		fingerprint([]CanonKey{"a", "b"}),
		fingerprint([]CanonKey{"a", "b"}),
	)

	// order and dynamic type are part of the fingerprint
	assert.NotEqual(t,
		fingerprint([]CanonKey{"a", "b"}),
		fingerprint([]CanonKey{"b", "a"}),
	)
	assert.NotEqual(t,
		fingerprint([]CanonKey{1}),
		fingerprint([]CanonKey{"1"}),
	)
}

func TestFingerprint_EmptyKeyPathPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty key path, but didn't panic")
		}
	}()
	fingerprint(nil)
}
