package main

import (
	"fmt"
	"sort"
	"strings"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/elasticsearch"
)

// defaultBlueprint is used when no --blueprint flag is given.
const defaultBlueprint = "elasticsearch"

// factory constructs a blueprint from raw (unresolved) variables.
type factory func(vars map[string]any) (blueprints.Blueprint, error)

// factories maps blueprint names to constructors.
var factories = map[string]factory{
	"elasticsearch": func(vars map[string]any) (blueprints.Blueprint, error) {
		return elasticsearch.New(vars)
	},
}

// variableSpecs maps blueprint names to their declared variable sets, for
// commands that need the specs without constructing a blueprint.
var variableSpecs = map[string]func() map[string]blueprints.VarSpec{
	"elasticsearch": elasticsearch.VariableSpecs,
}

func lookupFactory(name string) (factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown blueprint %q (available: %s)", name, availableBlueprints())
	}
	return f, nil
}

func lookupSpecs(name string) (map[string]blueprints.VarSpec, error) {
	specs, ok := variableSpecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown blueprint %q (available: %s)", name, availableBlueprints())
	}
	return specs(), nil
}

func availableBlueprints() string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
