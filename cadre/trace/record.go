// Package trace records how each cadre of a generation run was formed.
// It has no dependencies on cadre/ and stores pure data types.
package trace

// Source says which phase of generation emitted a cadre.
type Source string

const (
	SourcePreferred Source = "preferred" // a preferred group, emitted verbatim
	SourceClique    Source = "clique"    // clique search around a seed person, maybe padded
	SourceRemainder Source = "remainder" // everyone left once few enough remained
)

// CadreRecord captures a single cadre decision.
type CadreRecord struct {
	Index      int      `yaml:"index" json:"index"`
	Source     Source   `yaml:"source" json:"source"`
	Members    []string `yaml:"members" json:"members"`
	SeedPerson string   `yaml:"seed_person,omitempty" json:"seed_person,omitempty"`
	SeedDegree int      `yaml:"seed_degree,omitempty" json:"seed_degree,omitempty"`
	TargetSize int      `yaml:"target_size,omitempty" json:"target_size,omitempty"`
	CliqueSize int      `yaml:"clique_size,omitempty" json:"clique_size,omitempty"` // members found by clique search
	Candidates int      `yaml:"candidates,omitempty" json:"candidates,omitempty"`   // candidate cliques at the accepted size
	Padded     []string `yaml:"padded,omitempty" json:"padded,omitempty"`           // members added at random, in draw order
}
