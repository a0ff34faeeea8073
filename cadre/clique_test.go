package cadre

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// starGraph: a is compatible only with d and e; everyone else is compatible.
func starGraph() *compatGraph {
	return newCompatGraph([]string{"a", "b", "c", "d", "e"}, nil, [][]string{{"a", "b"}, {"a", "c"}})
}

func TestNewCliqueSearch_MaximalCliquesContainSeed(t *testing.T) {
	g := newCompatGraph([]string{"a", "b", "c", "d"}, nil, [][]string{{"b", "c"}})

	s := newCliqueSearch(g, "a")

	want := [][]string{{"a", "b", "d"}, {"a", "c", "d"}}
	if diff := cmp.Diff(want, s.cliques); diff != "" {
		t.Errorf("cliques mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCliqueSearch_IsolatedSeedIsItsOwnClique(t *testing.T) {
	g := newCompatGraph([]string{"x", "y"}, nil, [][]string{{"x", "y"}})

	s := newCliqueSearch(g, "x")

	assert.Equal(t, [][]string{{"x"}}, s.cliques)
}

// findClique runs a fresh search around seed and asks for k people.
func findClique(g *compatGraph, seed string, k int, policy CliquePolicy, rng *rand.Rand) ([]string, bool) {
	clique, n := newCliqueSearch(g, seed).ofSize(k, policy, rng)
	return clique, n > 0
}

func TestFindClique_ExactSize(t *testing.T) {
	for _, policy := range []CliquePolicy{PolicyTrimmed, PolicyMaximal} {
		t.Run(string(policy), func(t *testing.T) {
			g := starGraph()
			rng := NewGenerationKey(3).Stream()

			clique, ok := findClique(g, "a", 3, policy, rng)

			require.True(t, ok)
			assert.Equal(t, []string{"a", "d", "e"}, clique)
			// the graph is untouched
			assert.Equal(t, 5, g.Len())
		})
	}
}

func TestFindClique_TooLargeIsNotFound(t *testing.T) {
	for _, policy := range []CliquePolicy{PolicyTrimmed, PolicyMaximal} {
		_, ok := findClique(starGraph(), "a", 4, policy, NewGenerationKey(3).Stream())
		assert.False(t, ok, "policy %s", policy)
	}
}

func TestFindClique_SmallerThanMaximal(t *testing.T) {
	// GIVEN a's only maximal clique is {a, d, e}
	// WHEN asking for 2 people
	// THEN maximal finds nothing while trimmed keeps a plus one of d, e
	_, ok := findClique(starGraph(), "a", 2, PolicyMaximal, NewGenerationKey(3).Stream())
	assert.False(t, ok)

	clique, ok := findClique(starGraph(), "a", 2, PolicyTrimmed, NewGenerationKey(3).Stream())
	require.True(t, ok)
	require.Len(t, clique, 2)
	assert.Contains(t, clique, "a")
	assert.True(t, slices.Contains(clique, "d") || slices.Contains(clique, "e"), "got %v", clique)
	assert.True(t, slices.IsSorted(clique))
}

func TestFindClique_SeedAloneUnderTrimmed(t *testing.T) {
	clique, ok := findClique(starGraph(), "a", 1, PolicyTrimmed, NewGenerationKey(3).Stream())
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, clique)
}

func TestFindClique_ZeroSize(t *testing.T) {
	_, ok := findClique(starGraph(), "a", 0, PolicyTrimmed, NewGenerationKey(3).Stream())
	assert.False(t, ok)
}

func TestFindClique_SameSeedSameChoice(t *testing.T) {
	g := newCompatGraph([]string{"a", "b", "c", "d"}, nil, [][]string{{"b", "c"}})

	for s := int64(0); s < 20; s++ {
		c1, _ := findClique(g, "a", 3, PolicyMaximal, NewGenerationKey(s).Stream())
		c2, _ := findClique(g, "a", 3, PolicyMaximal, NewGenerationKey(s).Stream())
		assert.Equal(t, c1, c2, "seed %d", s)
	}
}

func TestFindClique_TieBreakReachesEveryCandidate(t *testing.T) {
	// GIVEN two equally good cliques around a
	g := newCompatGraph([]string{"a", "b", "c", "d"}, nil, [][]string{{"b", "c"}})

	seen := map[string]bool{}
	for s := int64(0); s < 64; s++ {
		c, ok := findClique(g, "a", 3, PolicyMaximal, NewGenerationKey(s).Stream())
		require.True(t, ok)
		seen[c[1]] = true
	}

	// THEN different seeds pick both of them
	assert.True(t, seen["b"] && seen["c"], "tie-break never varied: %v", seen)
}

func TestOfSize_CountsCandidates(t *testing.T) {
	g := newCompatGraph([]string{"a", "b", "c", "d"}, nil, [][]string{{"b", "c"}})
	s := newCliqueSearch(g, "a")

	_, n := s.ofSize(3, PolicyMaximal, NewGenerationKey(1).Stream())
	assert.Equal(t, 2, n)
	_, n = s.ofSize(4, PolicyTrimmed, NewGenerationKey(1).Stream())
	assert.Zero(t, n)
}

func TestParseCliquePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CliquePolicy
		wantErr bool
	}{
		{"", PolicyTrimmed, false},
		{"trimmed", PolicyTrimmed, false},
		{"maximal", PolicyMaximal, false},
		{"exact", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCliquePolicy(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidConfig), "%q: err = %v", tt.in, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
