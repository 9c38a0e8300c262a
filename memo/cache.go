package memo

import "go.uber.org/zap"

// Cache is the storage backend behind a memoized function. A cache is
// created once at wrap time and owned exclusively by the wrapper closure;
// no other component reaches into it.
//
// Race policy: Load and Store must be safe for concurrent use, but a miss
// observed by two goroutines at once may lead to duplicate computation of
// the same key. The last write wins. Backends never serialize computation
// per key.
type Cache[O any] interface {
	Load(keys []CanonKey) (O, bool)
	Store(keys []CanonKey, value O)
}

type cacheConfig struct {
	maxEntries       uint32
	ristrettoMaxCost int64
	logger           *zap.Logger
}

// CacheOption configures the cache backend of a Memoize* wrapper.
type CacheOption func(*cacheConfig)

// WithMaxEntries bounds the default trie backend to roughly n entries,
// rotating out the older generation when the bound is reached. n must be
// greater than zero.
func WithMaxEntries(n uint32) CacheOption {
	if n == 0 {
		panic("memo: WithMaxEntries requires n > 0")
	}
	return func(cfg *cacheConfig) {
		cfg.maxEntries = n
	}
}

// WithRistretto replaces the trie backend with a ristretto cache of the
// given maximum cost (one unit per entry). Entries are keyed by a 64-bit
// fingerprint of the argument tuple; see the backend documentation for
// the equality rule this implies.
func WithRistretto(maxCost int64) CacheOption {
	if maxCost <= 0 {
		panic("memo: WithRistretto requires maxCost > 0")
	}
	return func(cfg *cacheConfig) {
		cfg.ristrettoMaxCost = maxCost
	}
}

// WithLogger attaches a logger for cache diagnostics (generation
// rotation, admission rejections), emitted at debug level. Without it
// the cache is silent.
func WithLogger(logger *zap.Logger) CacheOption {
	return func(cfg *cacheConfig) {
		cfg.logger = logger
	}
}

func newCache[O any](opts ...CacheOption) Cache[O] {
	cfg := cacheConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ristrettoMaxCost > 0 && cfg.maxEntries > 0 {
		panic("memo: WithMaxEntries and WithRistretto are mutually exclusive")
	}
	if cfg.ristrettoMaxCost > 0 {
		return newRistrettoCache[O](cfg.ristrettoMaxCost, cfg.logger)
	}
	return newTrieCache[O](cfg.maxEntries, cfg.logger)
}
