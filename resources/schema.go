// Package resources holds the schema registry of every generated resource
// package. The typed resources themselves live in the service subpackages
// (databrew, mediapackage, lambda).
package resources

import (
	"sort"
	"strings"
)

//go:generate go run ../codegen --output ..

// Schema describes the properties of a resource or property type.
type Schema struct {
	// GoType is the package-qualified Go type, e.g. "databrew.Job".
	GoType     string
	Required   []string
	Properties []string
	Attributes []string
	// Lists and Maps name the properties held in []any and map[string]any
	// fields. All other properties are plain any.
	Lists []string
	Maps  []string
}

// HasProperty reports whether name is a declared property.
func (s Schema) HasProperty(name string) bool {
	i := sort.SearchStrings(s.Properties, name)
	return i < len(s.Properties) && s.Properties[i] == name
}

// IsList reports whether name is a list property.
func (s Schema) IsList(name string) bool {
	return contains(s.Lists, name)
}

// IsMap reports whether name is a map property.
func (s Schema) IsMap(name string) bool {
	return contains(s.Maps, name)
}

func contains(values []string, name string) bool {
	for _, v := range values {
		if v == name {
			return true
		}
	}
	return false
}

// HasAttribute reports whether name is a GetAtt attribute.
func (s Schema) HasAttribute(name string) bool {
	return contains(s.Attributes, name)
}

// Lookup returns the schema for a CloudFormation resource type.
func Lookup(cfType string) (Schema, bool) {
	s, ok := Schemas[cfType]
	return s, ok
}

// Types returns every supported CloudFormation resource type, sorted.
func Types() []string {
	types := make([]string, 0, len(Schemas))
	for t := range Schemas {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Nested returns the property type held by property of parent, where parent
// is a CloudFormation resource type or a "service.Resource_Type" key
// previously returned by Nested.
func Nested(parent, property string) (key string, schema Schema, ok bool) {
	var svc, parentName string
	if s, found := Schemas[parent]; found {
		svc, parentName, _ = strings.Cut(s.GoType, ".")
	} else {
		svc, parentName, ok = strings.Cut(parent, ".")
		if !ok {
			return "", Schema{}, false
		}
	}

	typeName, found := PropertyTypeMap[svc+"."+parentName+"."+property]
	if !found {
		return "", Schema{}, false
	}
	key = svc + "." + typeName
	schema, ok = PropertyTypes[key]
	return key, schema, ok
}
