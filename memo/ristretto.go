package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
)

// ristrettoCache keys entries by a 64-bit xxhash fingerprint of the
// canonical key path. Equality of argument tuples is therefore equality
// of fingerprints: a hash collision would conflate two tuples. The
// default trie backend compares keys exactly; choose this backend when
// admission/eviction under a cost bound matters more than that guarantee.
type ristrettoCache[O any] struct {
	cache  *ristretto.Cache[uint64, O]
	logger *zap.Logger
}

func newRistrettoCache[O any](maxCost int64, logger *zap.Logger) *ristrettoCache[O] {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, O]{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		panic(fmt.Errorf("memo: ristretto init: %w", err))
	}
	return &ristrettoCache[O]{cache: cache, logger: logger}
}

func (r *ristrettoCache[O]) Load(keys []CanonKey) (O, bool) {
	return r.cache.Get(fingerprint(keys))
}

func (r *ristrettoCache[O]) Store(keys []CanonKey, value O) {
	key := fingerprint(keys)
	if admitted := r.cache.Set(key, value, 1); !admitted {
		r.logger.Debug("memo entry rejected by admission policy",
			zap.Uint64("key", key),
		)
	}
	// Set is asynchronous; wait so the entry is visible to the next call.
	r.cache.Wait()
}

// fingerprint folds the canonical key path into a single 64-bit hash.
// Components are rendered with their dynamic type and separated by a unit
// separator so adjacent components cannot run together.
func fingerprint(keys []CanonKey) uint64 {
	if len(keys) == 0 {
		panic("memo: empty key path")
	}
	digest := xxhash.New()
	for _, k := range keys {
		_, _ = fmt.Fprintf(digest, "%T=%v", k, k)
		_, _ = digest.Write([]byte{0x1f})
	}
	return digest.Sum64()
}
