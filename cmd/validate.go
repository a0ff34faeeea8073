package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ggcadres/gg-cadres/cadre"
)

// validateCmd checks a spec without generating anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a specification for missing keys, unknown keys and unknown people",
	Run: func(cmd *cobra.Command, args []string) {
		summary, err := validateSpec(inputPath)
		if err != nil {
			logrus.Fatalf("Invalid specification: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	},
}

// validateSpec loads the spec at path and describes it in one line.
func validateSpec(path string) (string, error) {
	s, err := loadSpec(path)
	if err != nil {
		return "", err
	}
	gen, err := cadre.NewGenerator(s.GeneratorConfig(defaultSeed, ""))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: ok (%d people, %d groups of about %d, %d preferred, %d forbidden)",
		path, len(s.People), s.NumGroups, gen.CadreSize(), len(s.PreferredGroups), len(s.ForbiddenGroups)), nil
}

func init() {
	addInputFlag(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
