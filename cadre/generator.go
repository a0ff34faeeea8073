package cadre

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ggcadres/gg-cadres/cadre/trace"
)

// ErrInvalidConfig is wrapped by every error NewGenerator returns.
var ErrInvalidConfig = errors.New("invalid cadre config")

// Cadre is one output group: sorted, unique person identifiers.
type Cadre []string

// Config describes one generation run.
type Config struct {
	People          []string
	NumGroups       int
	PreferredGroups [][]string
	ForbiddenGroups [][]string
	Seed            int64
	Policy          CliquePolicy // empty selects DefaultCliquePolicy
	TraceLevel      trace.TraceLevel
}

// Result is the outcome of Generator.Generate.
type Result struct {
	// Cadres in emission order: preferred groups first, then graph-derived cadres.
	Cadres []Cadre

	// Padded counts people placed by random padding rather than by clique search.
	Padded int

	// Violations lists forbidden pairs placed in the same cadre by padding or by
	// the final sweep of leftover people, in emission order.
	Violations []Pair

	Seed   int64
	Policy CliquePolicy

	// Trace holds one record per cadre when Config.TraceLevel is decisions.
	Trace *trace.GenerationTrace
}

// Generator assembles cadres for a fixed Config. It holds no per-run state, so
// Generate may be called repeatedly and returns the same Result each time.
type Generator struct {
	people    []string   // sorted, unique
	preferred [][]string // sorted members, input order
	forbidden [][]string
	numGroups int
	key       GenerationKey
	policy    CliquePolicy
	traceLvl  trace.TraceLevel
}

// NewGenerator validates cfg and returns a Generator for it.
// Duplicate people collapse into one; repeated preferred groups are emitted once.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.NumGroups < 1 {
		return nil, fmt.Errorf("%w: number of groups must be positive, got %d", ErrInvalidConfig, cfg.NumGroups)
	}
	policy, err := ParseCliquePolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}

	people := slices.Clone(cfg.People)
	slices.Sort(people)
	people = slices.Compact(people)
	known := make(map[string]bool, len(people))
	for _, p := range people {
		known[p] = true
	}

	check := func(kind string, groups [][]string) error {
		for i, group := range groups {
			for _, p := range group {
				if !known[p] {
					return fmt.Errorf("%w: %s[%d] names unknown person %q", ErrInvalidConfig, kind, i, p)
				}
			}
		}
		return nil
	}
	if err := check("preferred-groups", cfg.PreferredGroups); err != nil {
		return nil, err
	}
	if err := check("forbidden-groups", cfg.ForbiddenGroups); err != nil {
		return nil, err
	}

	preferred, err := canonicalPreferred(cfg.PreferredGroups)
	if err != nil {
		return nil, err
	}
	traceLvl, err := trace.ParseTraceLevel(string(cfg.TraceLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Generator{
		people:    people,
		preferred: preferred,
		forbidden: cfg.ForbiddenGroups,
		numGroups: cfg.NumGroups,
		key:       NewGenerationKey(cfg.Seed),
		policy:    policy,
		traceLvl:  traceLvl,
	}, nil
}

// canonicalPreferred sorts each preferred group, drops empty and repeated groups,
// and rejects groups that share a person.
func canonicalPreferred(groups [][]string) ([][]string, error) {
	var out [][]string
	owner := make(map[string]int)
	for i, group := range groups {
		members := slices.Clone(group)
		slices.Sort(members)
		members = slices.Compact(members)
		if len(members) == 0 {
			continue
		}
		if slices.ContainsFunc(out, func(o []string) bool { return slices.Equal(o, members) }) {
			continue
		}
		for _, p := range members {
			if j, ok := owner[p]; ok {
				return nil, fmt.Errorf("%w: %q appears in preferred-groups[%d] and preferred-groups[%d]", ErrInvalidConfig, p, j, i)
			}
			owner[p] = i
		}
		out = append(out, members)
	}
	return out, nil
}

// CadreSize is the target cadre size: ceil(people / groups).
func (gen *Generator) CadreSize() int {
	return ceilDiv(len(gen.people), gen.numGroups)
}

// Graph returns the compatibility graph a run starts from, rendered as DOT.
func (gen *Generator) Graph() ([]byte, error) {
	return gen.newGraph().MarshalDOT("cadres")
}

func (gen *Generator) newGraph() *compatGraph {
	return newCompatGraph(gen.people, gen.preferred, gen.forbidden)
}

// Generate assigns every person to exactly one cadre.
//
// Preferred groups are emitted first. The rest of the people are then placed greedily:
// the person with the fewest compatible partners seeds each cadre, which is the largest
// compatible clique around them, padded at random when no clique is large enough.
func (gen *Generator) Generate() *Result {
	res := &Result{Seed: int64(gen.key), Policy: gen.policy}
	if gen.traceLvl == trace.TraceLevelDecisions {
		res.Trace = trace.NewGenerationTrace(gen.traceLvl)
	}

	for _, group := range gen.preferred {
		res.Cadres = append(res.Cadres, Cadre(slices.Clone(group)))
		res.Trace.Record(trace.CadreRecord{
			Index:   len(res.Cadres),
			Source:  trace.SourcePreferred,
			Members: slices.Clone(group),
		})
		logrus.Debugf("cadre %d: preferred group %v", len(res.Cadres), group)
	}

	g := gen.newGraph()
	rng := gen.key.Stream()
	cadreSize := gen.CadreSize()

	for g.Len() > 0 {
		if g.Len() <= cadreSize {
			last := g.People()
			res.Violations = append(res.Violations, forbiddenWithin(g, last)...)
			res.Cadres = append(res.Cadres, Cadre(last))
			res.Trace.Record(trace.CadreRecord{
				Index:   len(res.Cadres),
				Source:  trace.SourceRemainder,
				Members: slices.Clone(last),
			})
			logrus.Debugf("cadre %d: final %d people", len(res.Cadres), len(last))
			break
		}

		// Split an awkward remainder evenly instead of leaving a tiny last cadre.
		thisSize := cadreSize
		if g.Len() < 2*cadreSize {
			thisSize = ceilDiv(g.Len(), 2)
		}

		seed := g.lowestDegree()
		rec := trace.CadreRecord{
			Source:     trace.SourceClique,
			SeedPerson: seed,
			SeedDegree: g.Degree(seed),
			TargetSize: thisSize,
		}
		clique, candidates := gen.largestClique(g, seed, thisSize, rng)
		g.Remove(clique...)
		rec.CliqueSize, rec.Candidates = len(clique), candidates

		for len(clique) < thisSize {
			next := pick(rng, g.People())
			g.Remove(next)
			clique = append(clique, next)
			rec.Padded = append(rec.Padded, next)
			res.Padded++
		}

		slices.Sort(clique)
		res.Violations = append(res.Violations, forbiddenWithin(g, clique)...)
		res.Cadres = append(res.Cadres, Cadre(clique))
		rec.Index, rec.Members = len(res.Cadres), slices.Clone(clique)
		res.Trace.Record(rec)
		logrus.Debugf("cadre %d: seed %s, clique %d of %d, %d candidates",
			len(res.Cadres), seed, rec.CliqueSize, thisSize, candidates)
	}

	return res
}

// largestClique tries sizes size, size-1, ..., 1 around seed and returns the
// first compatible group found with the number of candidates at that size.
// Failing every size yields the seed alone and zero candidates.
func (gen *Generator) largestClique(g *compatGraph, seed string, size int, rng *rand.Rand) ([]string, int) {
	search := newCliqueSearch(g, seed)
	for k := size; k >= 1; k-- {
		if clique, n := search.ofSize(k, gen.policy, rng); n > 0 {
			return clique, n
		}
	}
	return []string{seed}, 0
}

// forbiddenWithin returns the forbidden pairs inside members, warning about each.
// Clique members never form one; padding and the final sweep can.
func forbiddenWithin(g *compatGraph, members []string) []Pair {
	var pairs []Pair
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if g.Forbidden(members[i], members[j]) {
				pair := NewPair(members[i], members[j])
				logrus.Warnf("forbidden pair %s/%s placed together: no compatible group was large enough", pair.A, pair.B)
				pairs = append(pairs, pair)
			}
		}
	}
	return pairs
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
