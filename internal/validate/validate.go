// Package validate lints rendered CloudFormation templates.
//
// It uses cfn-lint-go as a library dependency for guaranteed version
// control over the rule set.
package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/lex00/cfn-lint-go/pkg/lint"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/internal/render"
)

// Result contains the categorized outcome of linting one template.
type Result struct {
	Passed        bool     `json:"passed"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	Informational []string `json:"informational"`
}

// TotalIssues returns the total number of issues found.
func (r Result) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Informational)
}

// Template renders the built template to a temporary file and lints it.
func Template(t *blueprints.Template) (*Result, error) {
	data, err := render.ToJSON(t)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	f, err := os.CreateTemp("", "blueprint-*.template.json")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return File(f.Name())
}

// File lints a template document on disk.
func File(path string) (*Result, error) {
	linter := lint.New(lint.Options{})
	matches, err := linter.LintFile(path)
	if err != nil {
		return nil, fmt.Errorf("linting %s: %w", path, err)
	}

	result := &Result{
		Errors:        []string{},
		Warnings:      []string{},
		Informational: []string{},
	}

	for _, match := range matches {
		formatted := formatMatch(match)
		switch match.Level {
		case "Error":
			result.Errors = append(result.Errors, formatted)
		case "Warning":
			result.Warnings = append(result.Warnings, formatted)
		default:
			result.Informational = append(result.Informational, formatted)
		}
	}

	// Warnings are acceptable; errors are not.
	result.Passed = len(result.Errors) == 0
	return result, nil
}

// formatMatch renders a lint match as "RULE: message (at Resources/Name/...)".
func formatMatch(match lint.Match) string {
	if len(match.Location.Path) == 0 {
		return fmt.Sprintf("%s: %s", match.Rule.ID, match.Message)
	}
	parts := make([]string, len(match.Location.Path))
	for i, p := range match.Location.Path {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return fmt.Sprintf("%s: %s (at %s)", match.Rule.ID, match.Message, strings.Join(parts, "/"))
}
