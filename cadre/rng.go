package cadre

import (
	"math/rand"
)

// === GenerationKey ===

// GenerationKey uniquely identifies a reproducible generation run.
// Two runs with the same GenerationKey and identical Config MUST produce
// identical cadres in identical order.
type GenerationKey int64

// NewGenerationKey creates a GenerationKey from a seed value.
func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

// Stream returns a fresh random stream for one run.
//
// Thread-safety: the returned *rand.Rand is NOT thread-safe. A run draws from it
// on a single goroutine in a fixed order (clique choice, trim, padding).
func (k GenerationKey) Stream() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}

// === Draw helpers ===

// pick returns a uniformly chosen element of items. items must be non-empty.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// sample returns n elements of items chosen without replacement, in draw order.
// items is not modified.
func sample(rng *rand.Rand, items []string, n int) []string {
	pool := append([]string(nil), items...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}
