package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ggcadres/gg-cadres/cadre"
	"github.com/ggcadres/gg-cadres/cadre/spec"
	"github.com/ggcadres/gg-cadres/cadre/trace"
)

var (
	traceLevel      string // none or decisions
	traceOutputPath string // run report destination; empty disables it
)

// generateCmd reads a spec, generates cadres and writes them out
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate cadres from a specification",
	Run: func(cmd *cobra.Command, args []string) {
		if seed < 0 {
			logrus.Fatalf("Seed must be non-negative, got %d", seed)
		}
		format, err := outputFormatFor(outputFormat, outputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		res, err := generateCadres(inputPath, seed, cliquePolicy, traceLevel)
		if err != nil {
			logrus.Fatalf("Cadre generation failed: %v", err)
		}
		logrus.Infof("Generated %d cadres (seed=%d, policy=%s, padded=%d, violations=%d)",
			len(res.Cadres), res.Seed, res.Policy, res.Padded, len(res.Violations))

		data, err := spec.MarshalCadres(res.Cadres, format)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if traceOutputPath != "" {
			report, err := marshalReport(res)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			if err := writeOutput(traceOutputPath, report); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		if err := writeOutput(outputPath, data); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// loadSpec loads and validates the spec at path.
func loadSpec(path string) (*spec.Spec, error) {
	s, err := spec.Load(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// generateCadres runs one generation for the spec at path.
func generateCadres(path string, seed int64, policyName, traceName string) (*cadre.Result, error) {
	policy, err := cadre.ParseCliquePolicy(policyName)
	if err != nil {
		return nil, err
	}
	level, err := trace.ParseTraceLevel(traceName)
	if err != nil {
		return nil, err
	}
	s, err := loadSpec(path)
	if err != nil {
		return nil, err
	}
	cfg := s.GeneratorConfig(seed, policy)
	cfg.TraceLevel = level
	gen, err := cadre.NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Generating %d groups of about %d from %d people", s.NumGroups, gen.CadreSize(), len(s.People))
	return gen.Generate(), nil
}

// outputFormatFor resolves --format, falling back to the output file extension.
func outputFormatFor(flag, path string) (spec.Format, error) {
	if flag != "" {
		return spec.ParseFormat(flag)
	}
	if path == "" || path == "-" {
		return spec.FormatYAML, nil
	}
	return spec.FormatFromPath(path), nil
}

// writeOutput writes a fully rendered document to path, or to stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func init() {
	addInputFlag(generateCmd)
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "The file to write cadres to; use '-' for stdout")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", defaultSeed, "The seed to use for random number generation (non-negative)")
	generateCmd.Flags().StringVar(&cliquePolicy, "clique-policy", string(cadre.DefaultCliquePolicy), "Clique candidate policy (trimmed, maximal)")
	generateCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	generateCmd.Flags().StringVar(&traceOutputPath, "trace-output", "", "Write a YAML run report (padding, violations, trace summary) to this file")
	generateCmd.Flags().StringVar(&outputFormat, "format", "", "Output format (yaml, json, toml); defaults to the output file extension")

	rootCmd.AddCommand(generateCmd)
}
