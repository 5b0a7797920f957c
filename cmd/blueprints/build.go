package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/internal/render"
)

func newBuildCmd() *cobra.Command {
	cfg := loadEnvConfig()
	var (
		blueprintName string
		outputFormat  string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "build VARIABLES_FILE",
		Short: "Generate a CloudFormation template from a variables file",
		Long: `Build resolves the variables file against the blueprint's declared
variable set and generates the CloudFormation template.

Examples:
    blueprints build vars.yaml
    blueprints build vars.yaml -o template.json
    blueprints build vars.yaml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], blueprintName, outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", defaultBlueprint, "Blueprint to build")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", cfg.Format, "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", cfg.Output, "Output file (default: stdout)")

	return cmd
}

func runBuild(varsFile, blueprintName, format, outputFile string) error {
	t, err := buildTemplate(varsFile, blueprintName)
	if err != nil {
		return err
	}

	data, err := renderTemplate(t, format)
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}

// buildTemplate loads the variables file and runs the named blueprint's
// build pass.
func buildTemplate(varsFile, blueprintName string) (*blueprints.Template, error) {
	f, err := lookupFactory(blueprintName)
	if err != nil {
		return nil, err
	}

	vars, err := loadVariables(varsFile)
	if err != nil {
		return nil, err
	}

	bp, err := f(vars)
	if err != nil {
		return nil, fmt.Errorf("resolving variables: %w", err)
	}
	return bp.Build()
}

// loadVariables reads a YAML variables file into a raw map.
func loadVariables(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vars map[string]any
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return vars, nil
}

func renderTemplate(t *blueprints.Template, format string) ([]byte, error) {
	switch format {
	case "json":
		return render.ToJSON(t)
	case "yaml":
		return render.ToYAML(t)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
