// Package schema validates CloudFormation templates offline against the
// generated resource registry.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
	"github.com/lex00/wetwire-l1-go/resources"
)

// Options configures schema validation.
type Options struct {
	// Strict reports unknown properties as errors instead of warnings.
	Strict bool
}

// Result contains schema validation results.
type Result struct {
	Valid    bool
	Errors   []wetwire.SchemaError
	Warnings []wetwire.SchemaError
}

// Err combines Errors into a single error, or returns nil.
func (r *Result) Err() error {
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

// ValidateTemplate checks every resource of t: known type, required
// properties (including those of nested property types), known properties,
// and that references point at declared resources and parameters.
func ValidateTemplate(t *wetwire.Template, opts Options) *Result {
	v := &validator{template: t, opts: opts}

	names := make([]string, 0, len(t.Resources))
	for name := range t.Resources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v.resource(name, t.Resources[name])
	}

	for _, name := range sortedKeys(t.Outputs) {
		for _, ref := range template.References(t.Outputs[name].Value) {
			v.reference("Outputs."+name, "Value", ref)
		}
	}

	return &Result{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

type validator struct {
	template *wetwire.Template
	opts     Options
	errors   []wetwire.SchemaError
	warnings []wetwire.SchemaError
}

func (v *validator) errorf(resource, property, format string, args ...any) {
	v.errors = append(v.errors, wetwire.SchemaError{Resource: resource, Property: property, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) warnf(resource, property, format string, args ...any) {
	v.warnings = append(v.warnings, wetwire.SchemaError{Resource: resource, Property: property, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) resource(name string, def wetwire.ResourceDef) {
	if !template.ValidLogicalID(name) {
		v.errorf(name, "", "logical ID must be alphanumeric")
	}

	if !isValidResourceType(def.Type) {
		v.errorf(name, "Type", "invalid resource type format: %q", def.Type)
		return
	}

	for _, dep := range def.DependsOn {
		if _, ok := v.template.Resources[dep]; !ok {
			v.errorf(name, "DependsOn", "DependsOn target %q is not a resource", dep)
		}
	}
	if def.Condition != "" {
		if _, ok := v.template.Conditions[def.Condition]; !ok {
			v.errorf(name, "Condition", "unknown condition %q", def.Condition)
		}
	}

	for _, ref := range template.References(def.Properties) {
		v.reference(name, "", ref)
	}

	schema, ok := resources.Lookup(def.Type)
	if !ok {
		v.warnf(name, "Type", "unknown resource type %s (schema not available for validation)", def.Type)
		return
	}
	v.properties(name, "", def.Type, schema, def.Properties)
}

// properties checks one property map against schema. parent is the
// resource type or nested property type key used to resolve children.
func (v *validator) properties(resource, path, parent string, schema resources.Schema, props map[string]any) {
	for _, req := range schema.Required {
		if wetwire.IsMissing(props[req]) {
			v.errorf(resource, path, "Required property '%s' is missing", req)
		}
	}

	for _, key := range sortedKeys(props) {
		propPath := join(path, key)
		if !schema.HasProperty(key) {
			if v.opts.Strict {
				v.errorf(resource, propPath, "unknown property")
			} else {
				v.warnf(resource, propPath, "unknown property")
			}
			continue
		}

		childKey, child, ok := resources.Nested(parent, key)
		if !ok {
			continue
		}
		switch val := props[key].(type) {
		case map[string]any:
			if !isIntrinsic(val) {
				v.properties(resource, propPath, childKey, child, val)
			}
		case []any:
			for i, item := range val {
				if m, ok := item.(map[string]any); ok && !isIntrinsic(m) {
					v.properties(resource, fmt.Sprintf("%s[%d]", propPath, i), childKey, child, m)
				}
			}
		}
	}
}

func (v *validator) reference(resource, property string, ref template.Reference) {
	if ref.IsPseudo() {
		return
	}
	if def, ok := v.template.Resources[ref.Target]; ok {
		if ref.Kind != template.KindGetAtt || ref.Attribute == "" {
			return
		}
		if schema, known := resources.Lookup(def.Type); known && !schema.HasAttribute(ref.Attribute) {
			v.errorf(resource, property, "%s attribute %q is not defined for %s", ref.Kind, ref.Attribute, def.Type)
		}
		return
	}
	if _, ok := v.template.Parameters[ref.Target]; ok {
		if ref.Kind == template.KindGetAtt {
			v.errorf(resource, property, "%s target %q is a parameter, not a resource", ref.Kind, ref.Target)
		}
		return
	}
	v.errorf(resource, property, "unknown %s target %q", ref.Kind, ref.Target)
}

// isValidResourceType checks the AWS::Service::Resource or Custom::Name shape.
func isValidResourceType(resourceType string) bool {
	if strings.HasPrefix(resourceType, "Custom::") {
		return len(resourceType) > len("Custom::")
	}
	parts := strings.Split(resourceType, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return false
	}
	return parts[0] == "AWS" || parts[0] == "Alexa"
}

func isIntrinsic(m map[string]any) bool {
	if len(m) != 1 {
		return false
	}
	for k := range m {
		return k == "Ref" || k == "Condition" || strings.HasPrefix(k, "Fn::")
	}
	return false
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
