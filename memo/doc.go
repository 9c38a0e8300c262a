// Package memo provides typed memoization for pure functions.
//
// Memoization is only valid for pure functions: same input, same output,
// no side effects. Wrapping a function that reads the clock, does I/O, or
// closes over mutable state is a misuse — the wrapper will happily serve
// a stale result, because caching must never change the observable output
// of the function it wraps.
//
// The Memoize1 to Memoize4 family covers common arities with full type
// safety and no reflection; Memoize1x2 and Memoize2x2 cover Go's
// two-value returns. Arguments must be comparable or fmt.Stringer (see
// Key). Each wrapper owns its cache exclusively: created at wrap time,
// never shared, never reachable from outside the closure.
//
// Backends:
//   - default: an unbounded trie of lock-free maps. Growth is monotonic
//     and nothing is ever evicted; this is a documented limitation, not
//     an accident. Use a bound if the input domain is open-ended.
//   - WithMaxEntries: the same trie, bounded by generation rotation.
//   - WithRistretto: a cost-bounded ristretto cache keyed by a 64-bit
//     fingerprint of the argument tuple.
//
// Concurrent callers that miss on the same key may both compute; the last
// write wins. Computation is never serialized per key.
package memo
