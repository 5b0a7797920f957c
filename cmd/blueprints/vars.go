package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVarsCmd() *cobra.Command {
	var blueprintName string

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List the variables a blueprint accepts",
		Long: `Vars lists the declared variable set of a blueprint: name, type,
whether the variable is required, its default, and its description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVars(blueprintName)
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", defaultBlueprint, "Blueprint to describe")

	return cmd
}

func runVars(blueprintName string) error {
	specs, err := lookupSpecs(blueprintName)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tREQUIRED\tDEFAULT\tDESCRIPTION")
	for _, name := range names {
		spec := specs[name]
		def := ""
		if !spec.Required {
			def = fmt.Sprintf("%v", spec.Default)
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", name, spec.Type, spec.Required, def, spec.Description)
	}
	return w.Flush()
}
