package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudtools/blueprints-go/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var blueprintName string

	cmd := &cobra.Command{
		Use:   "validate VARIABLES_FILE",
		Short: "Build the template and lint it with cfn-lint",
		Long: `Validate builds the CloudFormation template and runs cfn-lint over it.

Warnings are reported but do not fail validation; errors do.

Examples:
    blueprints validate vars.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], blueprintName)
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", defaultBlueprint, "Blueprint to validate")

	return cmd
}

func runValidate(varsFile, blueprintName string) error {
	t, err := buildTemplate(varsFile, blueprintName)
	if err != nil {
		return err
	}

	result, err := validate.Template(t)
	if err != nil {
		return err
	}

	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	for _, msg := range result.Informational {
		fmt.Fprintf(os.Stderr, "info: %s\n", msg)
	}

	if !result.Passed {
		return fmt.Errorf("validation failed: %d error(s)", len(result.Errors))
	}

	fmt.Printf("Template is valid (%d resources, %d issue(s))\n",
		len(t.Resources), result.TotalIssues())
	return nil
}
