// Command blueprints generates CloudFormation templates from pre-built
// blueprints and a YAML variables file.
//
// Usage:
//
//	blueprints build vars.yaml        Generate the template
//	blueprints validate vars.yaml     Build and lint the template
//	blueprints graph vars.yaml        Dependency graph of the template
//	blueprints vars                   List blueprint variables
//	blueprints watch vars.yaml        Rebuild on variables-file changes
//	blueprints version                Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blueprints",
		Short: "Generate CloudFormation templates from blueprints",
		Long: `blueprints generates CloudFormation templates from pre-built blueprints.

A blueprint maps a fixed, typed variable set onto a stack template. Supply
the variables in a YAML file:

    Roles:
      - my-app-role
    TrustedNetworks:
      - 10.0.0.0/8

Then generate CloudFormation JSON:

    blueprints build vars.yaml`,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newValidateCmd(),
		newGraphCmd(),
		newVarsCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
