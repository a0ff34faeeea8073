package cadre

import (
	"fmt"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/graph/topo"
)

// CliquePolicy decides which maximal cliques qualify as candidates of a target size.
type CliquePolicy string

const (
	// PolicyTrimmed accepts maximal cliques of at least the target size and trims
	// the chosen one to size at random, always keeping the seed.
	PolicyTrimmed CliquePolicy = "trimmed"

	// PolicyMaximal accepts only maximal cliques of exactly the target size.
	PolicyMaximal CliquePolicy = "maximal"
)

// DefaultCliquePolicy is used when Config.Policy is empty.
const DefaultCliquePolicy = PolicyTrimmed

// validCliquePolicies is the registry of accepted policy names.
var validCliquePolicies = map[CliquePolicy]bool{
	PolicyTrimmed: true,
	PolicyMaximal: true,
}

// ParseCliquePolicy parses a policy name. The empty string selects DefaultCliquePolicy.
func ParseCliquePolicy(s string) (CliquePolicy, error) {
	if s == "" {
		return DefaultCliquePolicy, nil
	}
	p := CliquePolicy(s)
	if !validCliquePolicies[p] {
		return "", fmt.Errorf("%w: unknown clique policy %q; valid: trimmed, maximal", ErrInvalidConfig, s)
	}
	return p, nil
}

// cliqueSearch holds the maximal cliques containing one seed. Enumeration is
// exponential in the worst case, so the assembler runs it once per seed and then
// asks for progressively smaller sizes.
type cliqueSearch struct {
	seed    string
	cliques [][]string // each sorted; list sorted lexicographically
}

// newCliqueSearch enumerates the maximal cliques of g that contain seed.
// The result is canonical: members sorted, cliques sorted. g is not modified.
func newCliqueSearch(g *compatGraph, seed string) *cliqueSearch {
	s := &cliqueSearch{seed: seed}
	if !g.Has(seed) {
		return s
	}
	for _, nodes := range topo.BronKerbosch(g.neighbourhood(seed)) {
		clique := make([]string, 0, len(nodes))
		for _, n := range nodes {
			clique = append(clique, g.names[n.ID()])
		}
		slices.Sort(clique)
		s.cliques = append(s.cliques, clique)
	}
	slices.SortFunc(s.cliques, func(a, b []string) int { return slices.Compare(a, b) })
	return s
}

// candidates returns the maximal cliques that policy admits for size k, in
// canonical order.
func (s *cliqueSearch) candidates(k int, policy CliquePolicy) [][]string {
	if k < 1 {
		return nil
	}
	var out [][]string
	for _, c := range s.cliques {
		switch {
		case len(c) == k:
			out = append(out, c)
		case len(c) > k && policy == PolicyTrimmed:
			out = append(out, c)
		}
	}
	return out
}

// choose picks one candidate with rng and trims it to k people, keeping the seed.
func (s *cliqueSearch) choose(candidates [][]string, k int, rng *rand.Rand) []string {
	chosen := pick(rng, candidates)
	if len(chosen) == k {
		return slices.Clone(chosen)
	}

	others := make([]string, 0, len(chosen)-1)
	for _, p := range chosen {
		if p != s.seed {
			others = append(others, p)
		}
	}
	clique := append([]string{s.seed}, sample(rng, others, k-1)...)
	slices.Sort(clique)
	return clique
}

// ofSize returns a compatible group of exactly k people including the seed and
// the number of candidates it was drawn from. Zero candidates means policy admits
// none of size k; rng is consumed only otherwise.
func (s *cliqueSearch) ofSize(k int, policy CliquePolicy, rng *rand.Rand) ([]string, int) {
	candidates := s.candidates(k, policy)
	if len(candidates) == 0 {
		return nil, 0
	}
	return s.choose(candidates, k, rng), len(candidates)
}
