package blueprints

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// VarType identifies the declared type of a blueprint variable.
type VarType string

const (
	StringType VarType = "string"
	BoolType   VarType = "bool"
	ListType   VarType = "list"
	MapType    VarType = "map"
)

// VarSpec declares a single blueprint variable: its type, whether the
// caller must supply it, the default used otherwise, and a human-readable
// description surfaced by the CLI.
type VarSpec struct {
	Type        VarType
	Default     any
	Required    bool
	Description string
}

// ValidationError reports mutually inconsistent variable values discovered
// during a build pass. A build that returns one produces no template.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Validationf returns a *ValidationError with a formatted reason.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ResolveVariables checks supplied values against the declared specs and
// substitutes defaults. Every supplied name must be declared, every supplied
// value must match its declared type, and every required variable must be
// supplied. Blueprints only ever see the resolved map this returns.
func ResolveVariables(specs map[string]VarSpec, supplied map[string]any) (map[string]any, error) {
	for name := range supplied {
		if _, ok := specs[name]; !ok {
			return nil, fmt.Errorf("variable %q is not declared by this blueprint", name)
		}
	}

	resolved := make(map[string]any, len(specs))
	for _, name := range sortedNames(specs) {
		spec := specs[name]
		value, ok := supplied[name]
		if !ok {
			if spec.Required {
				return nil, fmt.Errorf("variable %q is required", name)
			}
			resolved[name] = spec.Default
			continue
		}
		if err := checkType(name, spec.Type, value); err != nil {
			return nil, err
		}
		resolved[name] = value
	}
	return resolved, nil
}

// DecodeVariables converts a resolved variable map into a typed variables
// struct. The YAML round-trip normalizes the loosely-typed values the
// variables file produces into the struct's field types.
func DecodeVariables(resolved map[string]any, out any) error {
	data, err := yaml.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("encoding variables: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding variables: %w", err)
	}
	return nil
}

func checkType(name string, t VarType, value any) error {
	var ok bool
	switch t {
	case StringType:
		_, ok = value.(string)
	case BoolType:
		_, ok = value.(bool)
	case ListType:
		switch value.(type) {
		case []any, []string:
			ok = true
		}
	case MapType:
		_, ok = value.(map[string]any)
	default:
		return fmt.Errorf("variable %q has unknown type %q", name, t)
	}
	if !ok {
		return fmt.Errorf("variable %q must be a %s, got %T", name, t, value)
	}
	return nil
}

func sortedNames(specs map[string]VarSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
