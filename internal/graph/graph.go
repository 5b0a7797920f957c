// Package graph generates DOT and Mermaid dependency graphs from built
// templates.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/internal/render"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from built templates.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format
}

// Generate writes the dependency graph of the template's resources to w.
// Edges point from a resource to the resources it references through Ref or
// Fn::GetAtt.
func (g *Generator) Generate(t *blueprints.Template, w io.Writer) error {
	edges, err := Edges(t)
	if err != nil {
		return err
	}

	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")
	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	for _, name := range sortedResourceNames(t) {
		n := graph.Node(name)
		n.Label(name + "\n" + t.Resources[name].Type)
	}

	for _, from := range sortedKeys(edges) {
		for _, to := range edges[from] {
			graph.Edge(graph.Node(from), graph.Node(to))
		}
	}

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err = w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(t *blueprints.Template) (string, error) {
	var sb strings.Builder
	if err := g.Generate(t, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Edges returns, per resource, the sorted list of other resources it
// references. The template is normalized first so intrinsics appear in
// their CloudFormation JSON form.
func Edges(t *blueprints.Template) (map[string][]string, error) {
	doc, err := render.Normalize(t)
	if err != nil {
		return nil, err
	}
	resources, _ := doc["Resources"].(map[string]any)

	edges := make(map[string][]string)
	for name, res := range resources {
		refs := make(map[string]bool)
		collectRefs(res, refs)

		var deps []string
		for ref := range refs {
			if ref == name {
				continue
			}
			if _, ok := t.Resources[ref]; ok {
				deps = append(deps, ref)
			}
		}
		if len(deps) > 0 {
			sort.Strings(deps)
			edges[name] = deps
		}
	}
	return edges, nil
}

// collectRefs walks a normalized property tree and records the logical
// names referenced through Ref and Fn::GetAtt.
func collectRefs(v any, out map[string]bool) {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["Ref"].(string); ok && len(val) == 1 {
			out[ref] = true
			return
		}
		if att, ok := val["Fn::GetAtt"].([]any); ok && len(val) == 1 && len(att) > 0 {
			if name, ok := att[0].(string); ok {
				out[name] = true
			}
			return
		}
		for _, item := range val {
			collectRefs(item, out)
		}
	case []any:
		for _, item := range val {
			collectRefs(item, out)
		}
	}
}

func sortedResourceNames(t *blueprints.Template) []string {
	names := make([]string, 0, len(t.Resources))
	for name := range t.Resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
