package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultSeed = 12

var (
	// CLI flags shared by the generate, validate and graph commands
	inputPath    string // Spec file to read
	outputPath   string // Output file; "-" is stdout
	seed         int64  // Seed for the run's random stream
	cliquePolicy string // trimmed or maximal
	outputFormat string // yaml, json or toml; empty follows the output extension
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gg-cadres",
	Short: "Partition people into balanced groups that honour forbidden and preferred pairings",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlag registers the required --input flag on c.
func addInputFlag(c *cobra.Command) {
	c.Flags().StringVarP(&inputPath, "input", "i", "", "The YAML or TOML file to read the specification from")
	_ = c.MarkFlagRequired("input")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
