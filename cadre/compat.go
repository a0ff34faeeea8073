package cadre

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// personNode is a compatibility graph node standing for one person.
type personNode struct {
	id   int64
	name string
}

func (n personNode) ID() int64 { return n.id }

// DOTID names the node after its person in DOT output.
func (n personNode) DOTID() string { return n.name }

// Pair is an unordered pair of people, stored with A < B.
type Pair struct {
	A string `yaml:"a" json:"a" toml:"a"`
	B string `yaml:"b" json:"b" toml:"b"`
}

// NewPair returns the canonical Pair for x and y.
func NewPair(x, y string) Pair {
	if y < x {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// forbiddenPairs expands every forbidden group into its 2-combinations.
func forbiddenPairs(groups [][]string) map[Pair]struct{} {
	pairs := make(map[Pair]struct{})
	for _, group := range groups {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				if group[i] == group[j] {
					continue
				}
				pairs[NewPair(group[i], group[j])] = struct{}{}
			}
		}
	}
	return pairs
}

// compatGraph is the compatibility graph of one generation run. It is owned by
// exactly one Generator.Generate call and shrinks as cadres are carved out of it.
type compatGraph struct {
	g         *simple.UndirectedGraph
	ids       map[string]int64 // live people only
	names     map[int64]string
	forbidden map[Pair]struct{}
}

// newCompatGraph builds the graph over people minus every preferred-group member.
// Two remaining people are joined unless some forbidden group contains both.
// people must be sorted and unique; node IDs follow that order.
func newCompatGraph(people []string, preferred, forbidden [][]string) *compatGraph {
	placed := make(map[string]bool)
	for _, group := range preferred {
		for _, p := range group {
			placed[p] = true
		}
	}

	c := &compatGraph{
		g:         simple.NewUndirectedGraph(),
		ids:       make(map[string]int64),
		names:     make(map[int64]string),
		forbidden: forbiddenPairs(forbidden),
	}

	var nodes []personNode
	for i, p := range people {
		if placed[p] {
			continue
		}
		n := personNode{id: int64(i), name: p}
		c.g.AddNode(n)
		c.ids[p] = n.id
		c.names[n.id] = p
		nodes = append(nodes, n)
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if c.Forbidden(nodes[i].name, nodes[j].name) {
				continue
			}
			c.g.SetEdge(c.g.NewEdge(nodes[i], nodes[j]))
		}
	}
	return c
}

// Len returns the number of people still in the graph.
func (c *compatGraph) Len() int {
	return len(c.ids)
}

// Has reports whether p is still in the graph.
func (c *compatGraph) Has(p string) bool {
	_, ok := c.ids[p]
	return ok
}

// People returns the remaining people, sorted.
func (c *compatGraph) People() []string {
	people := make([]string, 0, len(c.ids))
	for p := range c.ids {
		people = append(people, p)
	}
	slices.Sort(people)
	return people
}

// Degree returns the number of people p is still compatible with.
func (c *compatGraph) Degree(p string) int {
	id, ok := c.ids[p]
	if !ok {
		return 0
	}
	return len(graph.NodesOf(c.g.From(id)))
}

// Neighbors returns the remaining people compatible with p, sorted.
func (c *compatGraph) Neighbors(p string) []string {
	id, ok := c.ids[p]
	if !ok {
		return nil
	}
	var out []string
	for _, n := range graph.NodesOf(c.g.From(id)) {
		out = append(out, c.names[n.ID()])
	}
	slices.Sort(out)
	return out
}

// Connected reports whether a and b are both present and compatible.
func (c *compatGraph) Connected(a, b string) bool {
	ida, okA := c.ids[a]
	idb, okB := c.ids[b]
	return okA && okB && c.g.HasEdgeBetween(ida, idb)
}

// Forbidden reports whether a and b share a forbidden group. Unlike Connected it
// does not depend on graph membership.
func (c *compatGraph) Forbidden(a, b string) bool {
	_, ok := c.forbidden[NewPair(a, b)]
	return ok
}

// Remove deletes people and their edges. Unknown people are ignored.
func (c *compatGraph) Remove(people ...string) {
	for _, p := range people {
		id, ok := c.ids[p]
		if !ok {
			continue
		}
		c.g.RemoveNode(id)
		delete(c.ids, p)
		delete(c.names, id)
	}
}

// lowestDegree returns the person with the fewest compatible partners, breaking
// ties by the smallest identifier. The graph must not be empty.
func (c *compatGraph) lowestDegree() string {
	var best string
	bestDeg := -1
	for _, p := range c.People() {
		if d := c.Degree(p); bestDeg < 0 || d < bestDeg {
			best, bestDeg = p, d
		}
	}
	return best
}

// neighbourhood returns the subgraph induced by seed and its neighbours. Every
// maximal clique of it contains seed and is a maximal clique of the whole graph.
func (c *compatGraph) neighbourhood(seed string) *simple.UndirectedGraph {
	sub := simple.NewUndirectedGraph()
	id, ok := c.ids[seed]
	if !ok {
		return sub
	}
	members := append([]graph.Node{c.g.Node(id)}, graph.NodesOf(c.g.From(id))...)
	for _, n := range members {
		sub.AddNode(n)
	}
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if c.g.HasEdgeBetween(members[i].ID(), members[j].ID()) {
				sub.SetEdge(sub.NewEdge(members[i], members[j]))
			}
		}
	}
	return sub
}

// MarshalDOT renders the current graph in Graphviz DOT, naming nodes by person.
func (c *compatGraph) MarshalDOT(name string) ([]byte, error) {
	b, err := dot.Marshal(c.g, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshalling compatibility graph: %w", err)
	}
	return b, nil
}
