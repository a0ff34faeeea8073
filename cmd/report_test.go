package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalReport_WithoutTrace(t *testing.T) {
	path := writeSpecFile(t, "spec.yaml", `
people: [A, B, C]
num-groups: 1
forbidden-groups: [[A, B]]
`)
	res, err := generateCadres(path, defaultSeed, "", "")
	require.NoError(t, err)

	data, err := marshalReport(res)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, defaultSeed, got["seed"])
	assert.Equal(t, "trimmed", got["clique_policy"])
	assert.Len(t, got["violations"], 1)
	assert.NotContains(t, got, "trace")
	assert.Contains(t, got, "summary")
}

func TestGenerateCommand_WritesTraceReport(t *testing.T) {
	// GIVEN a spec, decision tracing and a report path
	in := writeSpecFile(t, "spec.yaml", `
people: [A, B, C, D, E, F]
num-groups: 2
preferred-groups: [[A, B]]
`)
	dir := t.TempDir()
	out := filepath.Join(dir, "cadres.yaml")
	report := filepath.Join(dir, "report.yaml")

	t.Cleanup(func() { traceLevel, traceOutputPath = "none", "" })

	// WHEN the generate command runs
	rootCmd.SetArgs([]string{"generate", "-i", in, "-o", out, "--trace", "decisions", "--trace-output", report, "--log", "error"})
	require.NoError(t, rootCmd.Execute())

	// THEN the report holds one trace record per cadre and a matching summary
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var got runReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.NotNil(t, got.Trace)
	require.NotNil(t, got.Summary)
	assert.Equal(t, len(got.Trace.Cadres), got.Summary.TotalCadres)
	assert.Equal(t, 1, got.Summary.PreferredCadres)
	assert.Equal(t, []string{"A", "B"}, got.Trace.Cadres[0].Members)
}
