package template

import (
	"regexp"
	"sort"
	"strings"
)

// Kind identifies the intrinsic a Reference came from.
type Kind string

const (
	KindRef    Kind = "Ref"
	KindGetAtt Kind = "Fn::GetAtt"
	KindSub    Kind = "Fn::Sub"
)

// Reference is one use of a logical name inside rendered properties.
type Reference struct {
	Kind      Kind
	Target    string
	Attribute string // set for Fn::GetAtt and ${Name.Attr} in Fn::Sub
}

// IsPseudo reports whether the target is a pseudo parameter such as AWS::Region.
func (r Reference) IsPseudo() bool {
	return strings.HasPrefix(r.Target, "AWS::")
}

var subVariable = regexp.MustCompile(`\$\{([^}]+)\}`)

// References walks rendered (JSON-shaped) data and returns every Ref,
// Fn::GetAtt and Fn::Sub reference in a stable order.
func References(v any) []Reference {
	var refs []Reference
	collect(v, &refs)
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].Target != refs[j].Target {
			return refs[i].Target < refs[j].Target
		}
		return refs[i].Kind < refs[j].Kind
	})
	return refs
}

func collect(v any, refs *[]Reference) {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 1 {
			if target, ok := val["Ref"].(string); ok {
				*refs = append(*refs, Reference{Kind: KindRef, Target: target})
				return
			}
			if getAtt, ok := val["Fn::GetAtt"]; ok {
				if ref, ok := parseGetAtt(getAtt); ok {
					*refs = append(*refs, ref)
				}
				return
			}
			if sub, ok := val["Fn::Sub"]; ok {
				collectSub(sub, refs)
				return
			}
		}
		for _, k := range sortedKeys(val) {
			collect(val[k], refs)
		}
	case []any:
		for _, elem := range val {
			collect(elem, refs)
		}
	}
}

// parseGetAtt accepts both ["Name", "Attr"] and the "Name.Attr" short form.
func parseGetAtt(v any) (Reference, bool) {
	switch args := v.(type) {
	case []any:
		if len(args) != 2 {
			return Reference{}, false
		}
		target, ok := args[0].(string)
		if !ok {
			return Reference{}, false
		}
		attr, _ := args[1].(string)
		return Reference{Kind: KindGetAtt, Target: target, Attribute: attr}, true
	case string:
		target, attr, ok := strings.Cut(args, ".")
		if !ok {
			return Reference{}, false
		}
		return Reference{Kind: KindGetAtt, Target: target, Attribute: attr}, true
	}
	return Reference{}, false
}

func collectSub(v any, refs *[]Reference) {
	var str string
	locals := map[string]bool{}

	switch args := v.(type) {
	case string:
		str = args
	case []any:
		if len(args) == 0 {
			return
		}
		str, _ = args[0].(string)
		if len(args) > 1 {
			if vars, ok := args[1].(map[string]any); ok {
				for name, value := range vars {
					locals[name] = true
					collect(value, refs)
				}
			}
		}
	default:
		return
	}

	for _, m := range subVariable.FindAllStringSubmatch(str, -1) {
		name := m[1]
		// ${!Literal} is an escaped, literal ${Literal}.
		if strings.HasPrefix(name, "!") || locals[name] {
			continue
		}
		target, attr, _ := strings.Cut(name, ".")
		if locals[target] {
			continue
		}
		*refs = append(*refs, Reference{Kind: KindSub, Target: target, Attribute: attr})
	}
}
