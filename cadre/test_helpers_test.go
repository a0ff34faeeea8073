package cadre

import (
	"fmt"
	"slices"
	"testing"
)

// people returns n identifiers p00, p01, ... that sort in creation order.
func people(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%02d", i)
	}
	return out
}

// mustGenerate builds a Generator for cfg and runs it once.
func mustGenerate(t *testing.T, cfg Config) *Result {
	t.Helper()
	gen, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen.Generate()
}

// assertPartition fails unless cadres cover want exactly once, with every
// cadre sorted.
func assertPartition(t *testing.T, cadres []Cadre, want []string) {
	t.Helper()
	count := make(map[string]int)
	for i, c := range cadres {
		if !slices.IsSorted(c) {
			t.Errorf("cadre %d not sorted: %v", i, c)
		}
		for _, p := range c {
			count[p]++
		}
	}
	for _, p := range want {
		if count[p] != 1 {
			t.Errorf("%s placed %d times, want 1", p, count[p])
		}
		delete(count, p)
	}
	for p := range count {
		t.Errorf("%s placed but not in input", p)
	}
}

// cadreOf returns the index of the cadre holding p, or -1.
func cadreOf(cadres []Cadre, p string) int {
	for i, c := range cadres {
		if slices.Contains(c, p) {
			return i
		}
	}
	return -1
}
