package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ggcadres/gg-cadres/cadre"
)

var graphOutputPath string

// graphCmd exports the compatibility graph that generation starts from
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Write the compatibility graph as Graphviz DOT",
	Long:  "Write the compatibility graph as Graphviz DOT. Preferred-group members are left out; an edge joins two people unless a forbidden group contains both.",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := compatibilityDOT(inputPath)
		if err != nil {
			logrus.Fatalf("Graph export failed: %v", err)
		}
		if err := writeOutput(graphOutputPath, data); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// compatibilityDOT renders the initial compatibility graph of the spec at path.
func compatibilityDOT(path string) ([]byte, error) {
	s, err := loadSpec(path)
	if err != nil {
		return nil, err
	}
	gen, err := cadre.NewGenerator(s.GeneratorConfig(defaultSeed, ""))
	if err != nil {
		return nil, err
	}
	data, err := gen.Graph()
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func init() {
	addInputFlag(graphCmd)
	graphCmd.Flags().StringVarP(&graphOutputPath, "output", "o", "-", "The DOT file to write; use '-' for stdout")
	rootCmd.AddCommand(graphCmd)
}
