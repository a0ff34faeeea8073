package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ggcadres/gg-cadres/cadre"
	"github.com/ggcadres/gg-cadres/cadre/trace"
)

// runReport is the --trace-output document: what a run did besides its cadres.
type runReport struct {
	Seed       int64                  `yaml:"seed"`
	Policy     cadre.CliquePolicy     `yaml:"clique_policy"`
	Padded     int                    `yaml:"padded"`
	Violations []cadre.Pair           `yaml:"violations"`
	Summary    *trace.TraceSummary    `yaml:"summary"`
	Trace      *trace.GenerationTrace `yaml:"trace,omitempty"`
}

// marshalReport renders res as a YAML run report.
func marshalReport(res *cadre.Result) ([]byte, error) {
	violations := res.Violations
	if violations == nil {
		violations = []cadre.Pair{}
	}
	data, err := yaml.Marshal(runReport{
		Seed:       res.Seed,
		Policy:     res.Policy,
		Padded:     res.Padded,
		Violations: violations,
		Summary:    trace.Summarize(res.Trace),
		Trace:      res.Trace,
	})
	if err != nil {
		return nil, fmt.Errorf("YAML marshal failed: %w", err)
	}
	return data, nil
}
