// Package render serializes built templates to JSON and YAML.
package render

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	blueprints "github.com/cloudtools/blueprints-go"
)

// ToJSON serializes the template to indented JSON.
func ToJSON(t *blueprints.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML. The intrinsic types only carry
// JSON marshalers, so the template is normalized through JSON first.
func ToYAML(t *blueprints.Template) ([]byte, error) {
	doc, err := Normalize(t)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Normalize returns the template as a plain map document, with every
// intrinsic reduced to its CloudFormation JSON form.
func Normalize(t *blueprints.Template) (map[string]any, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
