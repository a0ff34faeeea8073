package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ggcadres/gg-cadres/cadre"
)

// ErrInvalidSpec is wrapped by every configuration error: missing or unknown keys,
// bad values, and groups naming people who are not listed.
var ErrInvalidSpec = errors.New("invalid specification")

// Key names accepted in a specification document.
const (
	KeyPeople          = "people"
	KeyNumGroups       = "num-groups"
	KeyPreferredGroups = "preferred-groups"
	KeyForbiddenGroups = "forbidden-groups"
)

var (
	requiredKeys = []string{KeyPeople, KeyNumGroups}
	optionalKeys = []string{KeyPreferredGroups, KeyForbiddenGroups}
)

// Spec is a cadre specification.
// Loaded from YAML or TOML via Load(path).
type Spec struct {
	People          []string   `yaml:"people" toml:"people"`
	NumGroups       int        `yaml:"num-groups" toml:"num-groups"`
	PreferredGroups [][]string `yaml:"preferred-groups,omitempty" toml:"preferred-groups,omitempty"`
	ForbiddenGroups [][]string `yaml:"forbidden-groups,omitempty" toml:"forbidden-groups,omitempty"`

	// keys records the top-level keys present in the source document. A nil map
	// means the Spec was built in code and every required key counts as present.
	keys map[string]bool
}

// Load reads and parses a specification file. The format follows the file
// extension: ".toml" is TOML, anything else is YAML.
// Uses strict parsing: unrecognized keys are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	return Decode(bytes.NewReader(data), FormatFromPath(path))
}

// Decode parses a specification document in the given format. It checks key
// names but not values; call Validate for that.
func Decode(r io.Reader, format Format) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	var s *Spec
	switch format {
	case FormatTOML:
		s, err = decodeTOML(data)
	default:
		s, err = decodeYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkKeys(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeYAML(data []byte) (*Spec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing spec: %v", ErrInvalidSpec, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: spec document is empty", ErrInvalidSpec)
	}
	keys := make(map[string]bool, len(raw))
	for k := range raw {
		keys[k] = true
	}
	if err := unknownKeys(keys); err != nil {
		return nil, err
	}

	var s Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: parsing spec: %v", ErrInvalidSpec, err)
	}
	s.keys = keys
	return &s, nil
}

func decodeTOML(data []byte) (*Spec, error) {
	var s Spec
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing spec: %v", ErrInvalidSpec, err)
	}
	keys := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) > 0 {
			keys[k[0]] = true
		}
	}
	if err := unknownKeys(keys); err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unrecognized keys: %v", ErrInvalidSpec, undecoded)
	}
	s.keys = keys
	return &s, nil
}

// unknownKeys rejects any key outside the required and optional sets.
func unknownKeys(keys map[string]bool) error {
	var bad []string
	for k := range keys {
		if !slices.Contains(requiredKeys, k) && !slices.Contains(optionalKeys, k) {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	slices.Sort(bad)
	return fmt.Errorf("%w: unrecognized keys: %s", ErrInvalidSpec, strings.Join(bad, ", "))
}

func (s *Spec) checkKeys() error {
	if s.keys == nil {
		return nil
	}
	for _, k := range requiredKeys {
		if !s.keys[k] {
			return fmt.Errorf("%w: missing required key %q", ErrInvalidSpec, k)
		}
	}
	return nil
}

// Validate checks that all fields in the spec are valid.
func (s *Spec) Validate() error {
	if err := s.checkKeys(); err != nil {
		return err
	}
	if s.NumGroups < 1 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSpec, KeyNumGroups, s.NumGroups)
	}
	if len(s.People) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidSpec, KeyPeople)
	}

	people := make(map[string]bool, len(s.People))
	for i, p := range s.People {
		if p == "" {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidSpec, KeyPeople, i)
		}
		if people[p] {
			return fmt.Errorf("%w: %s lists %q more than once", ErrInvalidSpec, KeyPeople, p)
		}
		people[p] = true
	}

	for _, key := range optionalKeys {
		for i, group := range s.groups(key) {
			if err := validateGroup(key, i, group, people); err != nil {
				return err
			}
		}
	}

	seen := make(map[string]int)
	for i, group := range s.PreferredGroups {
		if len(group) == 0 {
			return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidSpec, KeyPreferredGroups, i)
		}
		for _, p := range group {
			if j, ok := seen[p]; ok && j != i {
				return fmt.Errorf("%w: %q appears in %s[%d] and %s[%d]",
					ErrInvalidSpec, p, KeyPreferredGroups, j, KeyPreferredGroups, i)
			}
			seen[p] = i
		}
	}
	return nil
}

func validateGroup(key string, idx int, group []string, people map[string]bool) error {
	var missing []string
	for _, p := range group {
		if !people[p] && !slices.Contains(missing, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%w: non-existent people in %s[%d]: %s",
		ErrInvalidSpec, key, idx, strings.Join(missing, ", "))
}

func (s *Spec) groups(key string) [][]string {
	switch key {
	case KeyPreferredGroups:
		return s.PreferredGroups
	case KeyForbiddenGroups:
		return s.ForbiddenGroups
	}
	return nil
}

// GeneratorConfig converts the spec into a cadre.Config for one run.
func (s *Spec) GeneratorConfig(seed int64, policy cadre.CliquePolicy) cadre.Config {
	return cadre.Config{
		People:          s.People,
		NumGroups:       s.NumGroups,
		PreferredGroups: s.PreferredGroups,
		ForbiddenGroups: s.ForbiddenGroups,
		Seed:            seed,
		Policy:          policy,
	}
}
