// Package blueprints provides declarative CloudFormation template generation
// for a set of pre-built infrastructure patterns.
//
// A blueprint maps a fixed, typed, defaulted variable set onto a
// CloudFormation template:
//
//	d, err := elasticsearch.New(map[string]any{
//	    "Roles":           []any{"my-app-role"},
//	    "TrustedNetworks": []any{"10.0.0.0/8"},
//	})
//	t, err := d.Build()
//
// The blueprints CLI resolves variables from a YAML file and serializes the
// built template to JSON or YAML.
package blueprints

// Blueprint is implemented by every template generator in this module.
// A Blueprint is constructed from an already-resolved variable set and
// produces its template in a single synchronous build pass.
type Blueprint interface {
	// Name returns the blueprint name used for registry lookup.
	Name() string

	// VariableSpecs returns the variable set the blueprint accepts.
	VariableSpecs() map[string]VarSpec

	// Build assembles the template. On a validation failure no template
	// is returned.
	Build() (*Template, error)
}

// Template represents a CloudFormation template under construction.
// Resources and outputs are appended to it by the blueprint build pass;
// serialization is handled by the render package.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// NewTemplate creates an empty template with the standard format version.
func NewTemplate(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              description,
		Resources:                make(map[string]ResourceDef),
	}
}

// AddResource appends a resource under the given logical id. Blueprints use
// one fixed logical id per resource kind, so a kind appears at most once.
func (t *Template) AddResource(name string, def ResourceDef) {
	t.Resources[name] = def
}

// AddOutput appends a stack output under the given name.
func (t *Template) AddOutput(name string, out Output) {
	if t.Outputs == nil {
		t.Outputs = make(map[string]Output)
	}
	t.Outputs[name] = out
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type"`
	Description   string   `json:"Description,omitempty"`
	Default       any      `json:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty"`
}

// Output is a CloudFormation stack output.
type Output struct {
	Description string `json:"Description,omitempty"`
	Value       any    `json:"Value"`
	Export      *struct {
		Name string `json:"Name"`
	} `json:"Export,omitempty"`
}
