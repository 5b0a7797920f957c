package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudtools/blueprints-go/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var (
		blueprintName string
		outputFormat  string
	)

	cmd := &cobra.Command{
		Use:   "graph VARIABLES_FILE",
		Short: "Generate a DOT graph of the template's resource dependencies",
		Long: `Generate a DOT or Mermaid graph of the resources in the built template.

The output can be rendered with Graphviz:
    blueprints graph vars.yaml | dot -Tpng -o stack.png

Or used in GitHub markdown (Mermaid format):
    blueprints graph vars.yaml -f mermaid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0], blueprintName, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", defaultBlueprint, "Blueprint to graph")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}

func runGraph(varsFile, blueprintName, format string) error {
	t, err := buildTemplate(varsFile, blueprintName)
	if err != nil {
		return err
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{Format: graphFormat}
	return gen.Generate(t, os.Stdout)
}
