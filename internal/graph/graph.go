// Package graph renders the resource dependency graph of a template in
// DOT or Mermaid format.
package graph

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// ParseFormat validates a format name. The empty string selects DOT.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatDOT:
		return FormatDOT, nil
	case FormatMermaid:
		return FormatMermaid, nil
	default:
		return "", fmt.Errorf("unknown graph format %q: must be dot or mermaid", s)
	}
}

// Generator creates dependency graphs from templates.
type Generator struct {
	// IncludeParameters adds parameter nodes and their Ref edges.
	IncludeParameters bool

	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format

	// ClusterByService groups resources by AWS service (DataBrew, MediaPackage, ...).
	ClusterByService bool
}

// edgeKind says how one resource refers to another.
type edgeKind int

const (
	edgeRef edgeKind = 1 << iota
	edgeGetAtt
	edgeDependsOn
)

// Generate writes the dependency graph of t to w.
func (g *Generator) Generate(t *wetwire.Template, w io.Writer) error {
	graph := g.buildGraph(t)

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := io.WriteString(w, output)
	return err
}

// GenerateString returns the graph as a string.
func (g *Generator) GenerateString(t *wetwire.Template) (string, error) {
	var sb strings.Builder
	if err := g.Generate(t, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(t *wetwire.Template) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	names := sortedKeys(t.Resources)
	nodes := make(map[string]dot.Node, len(names))

	if g.ClusterByService {
		g.addClusteredNodes(graph, t, names, nodes)
	} else {
		for _, name := range names {
			nodes[name] = resourceNode(graph, name, t.Resources[name].Type)
		}
	}

	if g.IncludeParameters {
		for _, name := range sortedKeys(t.Parameters) {
			n := graph.Node(name)
			n.Attr("shape", "ellipse")
			n.Attr("style", "dashed")
			n.Label(name)
			nodes[name] = n
		}
	}

	for _, name := range names {
		edges := g.edges(t, name)
		for _, target := range sortedKeys(edges) {
			to, ok := nodes[target]
			if !ok {
				continue
			}
			e := graph.Edge(nodes[name], to)
			kind := edges[target]
			switch {
			case kind&edgeGetAtt != 0:
				e.Attr("color", "blue")
			case kind == edgeDependsOn:
				e.Attr("style", "dashed")
			}
		}
	}

	return graph
}

// edges collects the outgoing references of resource name.
func (g *Generator) edges(t *wetwire.Template, name string) map[string]edgeKind {
	def := t.Resources[name]
	edges := make(map[string]edgeKind)

	for _, ref := range template.References(def.Properties) {
		if ref.IsPseudo() || ref.Target == name {
			continue
		}
		_, isResource := t.Resources[ref.Target]
		_, isParam := t.Parameters[ref.Target]
		if !isResource && !(isParam && g.IncludeParameters) {
			continue
		}
		if ref.Kind == template.KindGetAtt || ref.Attribute != "" {
			edges[ref.Target] |= edgeGetAtt
		} else {
			edges[ref.Target] |= edgeRef
		}
	}
	for _, dep := range def.DependsOn {
		if _, ok := t.Resources[dep]; ok {
			edges[dep] |= edgeDependsOn
		}
	}
	return edges
}

// addClusteredNodes groups resources by service. Services with a single
// resource are not clustered.
func (g *Generator) addClusteredNodes(graph *dot.Graph, t *wetwire.Template, names []string, nodes map[string]dot.Node) {
	byService := make(map[string][]string)
	for _, name := range names {
		svc := Service(t.Resources[name].Type)
		byService[svc] = append(byService[svc], name)
	}

	for _, svc := range sortedKeys(byService) {
		members := byService[svc]
		if len(members) < 2 {
			for _, name := range members {
				nodes[name] = resourceNode(graph, name, t.Resources[name].Type)
			}
			continue
		}

		cluster := graph.Subgraph("cluster_"+svc, dot.ClusterOption{})
		cluster.Attr("label", svc)
		cluster.Attr("style", "rounded")
		cluster.Attr("bgcolor", "lightyellow")
		for _, name := range members {
			nodes[name] = resourceNode(cluster, name, t.Resources[name].Type)
		}
	}
}

func resourceNode(graph *dot.Graph, name, cfType string) dot.Node {
	n := graph.Node(name)
	n.Label(name + "\\n[" + cfType + "]")
	return n
}

// Service extracts the service from a CloudFormation type.
// e.g. "AWS::MediaPackage::Channel" -> "MediaPackage"
func Service(cfType string) string {
	parts := strings.Split(cfType, "::")
	if len(parts) == 3 {
		return parts[1]
	}
	if len(parts) == 2 && parts[0] == "Custom" {
		return "Custom"
	}
	return "Other"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
