package template

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	wetwire "github.com/lex00/wetwire-l1-go"
)

// shortForms maps YAML short-form tags to their long-form function names.
var shortForms = map[string]string{
	"!Ref":          "Ref",
	"!Condition":    "Condition",
	"!Base64":       "Fn::Base64",
	"!Cidr":         "Fn::Cidr",
	"!FindInMap":    "Fn::FindInMap",
	"!GetAtt":       "Fn::GetAtt",
	"!GetAZs":       "Fn::GetAZs",
	"!ImportValue":  "Fn::ImportValue",
	"!Join":         "Fn::Join",
	"!Select":       "Fn::Select",
	"!Split":        "Fn::Split",
	"!Sub":          "Fn::Sub",
	"!Transform":    "Fn::Transform",
	"!And":          "Fn::And",
	"!Equals":       "Fn::Equals",
	"!If":           "Fn::If",
	"!Not":          "Fn::Not",
	"!Or":           "Fn::Or",
	"!ToJsonString": "Fn::ToJsonString",
	"!Length":       "Fn::Length",
}

// Load reads a JSON or YAML template from path.
func Load(path string) (*wetwire.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a JSON or YAML template. YAML short-form intrinsics such as
// !Ref and !GetAtt are expanded to their long form.
func Parse(data []byte) (*wetwire.Template, error) {
	var t wetwire.Template
	if err := json.Unmarshal(data, &t); err == nil {
		return &t, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("parsing template: empty document")
	}

	v, err := decodeNode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing template: top level is not a mapping")
	}
	normalizeDependsOn(root)

	// Round-trip through JSON so the template picks up its json field names.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &t, nil
}

// normalizeDependsOn rewrites the single-string DependsOn form as a list.
func normalizeDependsOn(root map[string]any) {
	res, _ := root["Resources"].(map[string]any)
	for _, r := range res {
		def, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if dep, ok := def["DependsOn"].(string); ok {
			def["DependsOn"] = []any{dep}
		}
	}
}

func decodeNode(n *yaml.Node) (any, error) {
	var v any
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0])

	case yaml.AliasNode:
		return decodeNode(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := decodeNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = val
		}
		v = m

	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := decodeNode(c)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		v = list

	case yaml.ScalarNode:
		plain := *n
		if isLocalTag(n.Tag) {
			plain.Tag = ""
			if n.Style == 0 {
				plain.Tag = "!!str"
			}
		}
		if err := plain.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}

	if !isLocalTag(n.Tag) {
		return v, nil
	}
	fn, ok := shortForms[n.Tag]
	if !ok {
		return nil, fmt.Errorf("line %d: unknown tag %s", n.Line, n.Tag)
	}
	if fn == "Fn::GetAtt" {
		if s, ok := v.(string); ok {
			resource, attribute, _ := strings.Cut(s, ".")
			v = []any{resource, attribute}
		}
	}
	return map[string]any{fn: v}, nil
}

func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
