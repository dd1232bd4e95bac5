package importer

import (
	"fmt"
	"strconv"
	"strings"

	cfn "github.com/lex00/cloudformation-schema-go/template"

	"github.com/lex00/wetwire-l1-go/resources"
)

// value renders a template value as a Go expression. typeKey names the
// property type the value holds, if any, so that maps become typed struct
// literals instead of Json.
func (g *generator) value(v any, typeKey string) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return number(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []any:
		return g.list(val, typeKey)
	case map[string]any:
		if in := mapToIntrinsic(val); in != nil {
			return g.intrinsic(in)
		}
		if schema, ok := resources.PropertyTypes[typeKey]; ok {
			return typeKey + "{\n" + g.fields(typeKey, typeKey, schema, val) + "}"
		}
		return g.jsonLiteral(val)
	default:
		return fmt.Sprintf("%#v", val)
	}
}

func (g *generator) list(items []any, typeKey string) string {
	if len(items) == 0 {
		return "[]any{}"
	}
	parts := make([]string, len(items))
	multiline := false
	for i, item := range items {
		parts[i] = g.value(item, typeKey)
		if strings.Contains(parts[i], "\n") {
			multiline = true
		}
	}
	if multiline {
		return "[]any{\n" + strings.Join(parts, ",\n") + ",\n}"
	}
	return "[]any{" + strings.Join(parts, ", ") + "}"
}

// jsonLiteral renders a free-form map. Keys are kept verbatim, so a map
// that happens to be an intrinsic still renders to the same JSON.
func (g *generator) jsonLiteral(m map[string]any) string {
	g.imports[intrinsicsPath] = true
	if len(m) == 0 {
		return "Json{}"
	}
	var sb strings.Builder
	sb.WriteString("Json{\n")
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(&sb, "%q: %s,\n", k, g.value(m[k], ""))
	}
	sb.WriteString("}")
	return sb.String()
}

// tags renders Key/Value maps as Tag literals.
func (g *generator) tags(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		_, hasKey := m["Key"]
		_, hasValue := m["Value"]
		if !ok || len(m) != 2 || !hasKey || !hasValue {
			parts[i] = g.value(item, "")
			continue
		}
		g.imports[intrinsicsPath] = true
		parts[i] = fmt.Sprintf("Tag{Key: %s, Value: %s}", g.value(m["Key"], ""), g.value(m["Value"], ""))
	}
	return "[]any{\n" + strings.Join(parts, ",\n") + ",\n}"
}

// mapToIntrinsic recognizes a single-key intrinsic function map.
func mapToIntrinsic(m map[string]any) *cfn.Intrinsic {
	if len(m) != 1 {
		return nil
	}
	for k, v := range m {
		var typ cfn.IntrinsicType
		switch k {
		case "Ref":
			typ = cfn.IntrinsicRef
		case "Fn::GetAtt":
			typ = cfn.IntrinsicGetAtt
		case "Fn::Sub":
			typ = cfn.IntrinsicSub
		case "Fn::Join":
			typ = cfn.IntrinsicJoin
		case "Fn::Select":
			typ = cfn.IntrinsicSelect
		case "Fn::GetAZs":
			typ = cfn.IntrinsicGetAZs
		case "Fn::If":
			typ = cfn.IntrinsicIf
		case "Fn::Equals":
			typ = cfn.IntrinsicEquals
		default:
			return nil
		}
		return &cfn.Intrinsic{Type: typ, Args: v}
	}
	return nil
}

// intrinsic renders an intrinsic with the typed helpers from the
// intrinsics package. Malformed arguments fall back to a Json literal of
// the original map.
func (g *generator) intrinsic(in *cfn.Intrinsic) string {
	g.imports[intrinsicsPath] = true

	switch in.Type {
	case cfn.IntrinsicRef:
		target, ok := in.Args.(string)
		if !ok {
			break
		}
		if strings.HasPrefix(target, "AWS::") {
			if c, ok := pseudoParameters[target]; ok {
				return c
			}
		}
		if _, ok := g.tmpl.Parameters[target]; ok {
			g.usedParams[target] = true
			return g.vars[target]
		}
		if _, ok := g.tmpl.Resources[target]; !ok && !strings.HasPrefix(target, "AWS::") {
			g.warnf("Ref to unknown target %q", target)
		}
		return fmt.Sprintf("Ref{LogicalName: %q}", target)

	case cfn.IntrinsicGetAtt:
		logicalID, attr, ok := getAttArgs(in.Args)
		if !ok {
			break
		}
		if g.declared[logicalID] && !strings.Contains(attr, ".") {
			schema, _ := resources.Lookup(g.tmpl.Resources[logicalID].Type)
			if schema.HasAttribute(attr) {
				return g.vars[logicalID] + "." + attributeFieldName(attr)
			}
		}
		return fmt.Sprintf("GetAtt{LogicalName: %q, Attribute: %q}", logicalID, attr)

	case cfn.IntrinsicSub:
		switch args := in.Args.(type) {
		case string:
			return g.sub(args)
		case []any:
			if len(args) == 1 {
				if s, ok := args[0].(string); ok {
					return g.sub(s)
				}
			}
			if len(args) == 2 {
				s, ok := args[0].(string)
				vars, isMap := args[1].(map[string]any)
				if ok && isMap {
					return fmt.Sprintf("SubWithMap{String: %q, Variables: %s}", s, g.jsonLiteral(vars))
				}
			}
		}

	case cfn.IntrinsicJoin:
		if args, ok := in.Args.([]any); ok && len(args) == 2 {
			values, isList := args[1].([]any)
			if !isList {
				values = []any{args[1]}
			}
			return fmt.Sprintf("Join{Delimiter: %s, Values: %s}", g.value(args[0], ""), g.list(values, ""))
		}

	case cfn.IntrinsicSelect:
		if args, ok := in.Args.([]any); ok && len(args) == 2 {
			index, ok := selectIndex(args[0])
			if ok {
				return fmt.Sprintf("Select{Index: %d, List: %s}", index, g.value(args[1], ""))
			}
		}

	case cfn.IntrinsicGetAZs:
		switch region := in.Args.(type) {
		case string:
			if region == "" {
				return "GetAZs{}"
			}
			return fmt.Sprintf("GetAZs{Region: %q}", region)
		case map[string]any:
			if region["Ref"] == "AWS::Region" {
				return "GetAZs{}"
			}
		}

	case cfn.IntrinsicIf:
		if args, ok := in.Args.([]any); ok && len(args) == 3 {
			if cond, ok := args[0].(string); ok {
				return fmt.Sprintf("If{Condition: %q, ValueIfTrue: %s, ValueIfFalse: %s}",
					cond, g.value(args[1], ""), g.value(args[2], ""))
			}
		}

	case cfn.IntrinsicEquals:
		if args, ok := in.Args.([]any); ok && len(args) == 2 {
			return fmt.Sprintf("Equals{Value1: %s, Value2: %s}", g.value(args[0], ""), g.value(args[1], ""))
		}
	}

	return g.jsonLiteral(map[string]any{intrinsicKeys[in.Type]: in.Args})
}

// sub simplifies Fn::Sub strings that are a single variable.
func (g *generator) sub(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") && strings.Count(s, "${") == 1 {
		inner := s[2 : len(s)-1]
		if c, ok := pseudoParameters[inner]; ok {
			return c
		}
		if _, ok := g.tmpl.Parameters[inner]; ok {
			g.usedParams[inner] = true
			return g.vars[inner]
		}
		if id, attr, ok := strings.Cut(inner, "."); ok && g.declared[id] && !strings.Contains(attr, ".") {
			schema, _ := resources.Lookup(g.tmpl.Resources[id].Type)
			if schema.HasAttribute(attr) {
				return g.vars[id] + "." + attributeFieldName(attr)
			}
		}
	}
	return fmt.Sprintf("Sub{String: %q}", s)
}

func getAttArgs(args any) (logicalID, attr string, ok bool) {
	switch a := args.(type) {
	case []any:
		if len(a) != 2 {
			return "", "", false
		}
		id, idOK := a[0].(string)
		name, nameOK := a[1].(string)
		return id, name, idOK && nameOK
	case string:
		return strings.Cut(a, ".")
	}
	return "", "", false
}

func selectIndex(v any) (int, bool) {
	switch idx := v.(type) {
	case float64:
		return int(idx), idx == float64(int(idx))
	case int:
		return idx, true
	case string:
		n, err := strconv.Atoi(idx)
		return n, err == nil
	}
	return 0, false
}

func number(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var intrinsicKeys = map[cfn.IntrinsicType]string{
	cfn.IntrinsicRef:    "Ref",
	cfn.IntrinsicGetAtt: "Fn::GetAtt",
	cfn.IntrinsicSub:    "Fn::Sub",
	cfn.IntrinsicJoin:   "Fn::Join",
	cfn.IntrinsicSelect: "Fn::Select",
	cfn.IntrinsicGetAZs: "Fn::GetAZs",
	cfn.IntrinsicIf:     "Fn::If",
	cfn.IntrinsicEquals: "Fn::Equals",
}

var pseudoParameters = map[string]string{
	"AWS::AccountId":        "AWS_ACCOUNT_ID",
	"AWS::NotificationARNs": "AWS_NOTIFICATION_ARNS",
	"AWS::NoValue":          "AWS_NO_VALUE",
	"AWS::Partition":        "AWS_PARTITION",
	"AWS::Region":           "AWS_REGION",
	"AWS::StackId":          "AWS_STACK_ID",
	"AWS::StackName":        "AWS_STACK_NAME",
	"AWS::URLSuffix":        "AWS_URL_SUFFIX",
}
