package memo

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/fp_ive_go/shared/helper"
	"go.uber.org/zap"
)

// trieCache stores results in a trie of sync.Maps, one level per
// argument, so an argument tuple maps to a unique path without an
// intermediate encoding step.
//
// With maxSize == 0 the trie grows monotonically and is never cleared;
// this is the documented default. Otherwise two generations rotate: when
// the live generation reaches maxSize, a fresh generation takes over and
// the previous fallback is dropped, so recently stored entries survive
// one rotation as fallback reads. Generation slots are atomic pointers:
// rotation publishes the fresh generation atomically, so concurrent
// readers see either the old or the new one, never a torn slot.
type trieCache[O any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	logger  *zap.Logger
}

func newTrieCache[O any](maxSize uint32, logger *zap.Logger) *trieCache[O] {
	t := &trieCache[O]{
		maxSize: maxSize,
		logger:  logger,
	}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

func (t *trieCache[O]) Load(keys []CanonKey) (O, bool) {
	head := t.headIdx.Load()
	if v, ok := t.lookup(t.gens[head].Load(), keys); ok {
		return v, true
	}
	if t.maxSize > 0 {
		if v, ok := t.lookup(t.gens[1-head].Load(), keys); ok {
			return v, true
		}
	}
	var zero O
	return zero, false
}

func (t *trieCache[O]) Store(keys []CanonKey, value O) {
	if t.maxSize > 0 && t.size.CompareAndSwap(t.maxSize, 0) {
		head := t.headIdx.Load()
		t.gens[1-head].Store(&sync.Map{})
		t.headIdx.Store(1 - head)
		t.logger.Debug("memo cache generation rotated",
			zap.Uint32("maxEntries", t.maxSize),
		)
	}
	gen := t.gens[t.headIdx.Load()].Load()
	m, k := t.traverse(gen, keys)
	m.Store(k, value)
	t.size.Add(1)
}

func (t *trieCache[O]) lookup(gen *sync.Map, keys []CanonKey) (O, bool) {
	m, k := t.traverse(gen, keys)
	return helper.AsOf[O](func() (any, bool) { return m.Load(k) })
}

// traverse walks all but the last key, creating interior maps on demand,
// and returns the leaf map plus the final key.
func (t *trieCache[O]) traverse(gen *sync.Map, keys []CanonKey) (*sync.Map, CanonKey) {
	length := len(keys)
	if length == 0 {
		panic("memo: empty key path")
	}
	for _, k := range keys[:length-1] {
		v, ok := gen.Load(k)
		if !ok {
			v, _ = gen.LoadOrStore(k, &sync.Map{})
		}
		gen = helper.MustAs[*sync.Map](v)
	}
	return gen, keys[length-1]
}
