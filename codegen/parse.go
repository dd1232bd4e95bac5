package main

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lex00/cloudformation-schema-go/spec"
)

// Service represents a group of resources for one AWS service.
type Service struct {
	Name          string                        // e.g., "databrew"
	CFPrefix      string                        // e.g., "AWS::DataBrew"
	Resources     map[string]ParsedResource     // ResourceName -> Definition
	PropertyTypes map[string]ParsedPropertyType // Resource_PropertyType -> Definition
}

// ParsedPropertyType is a parsed property type (nested struct).
type ParsedPropertyType struct {
	Name           string // e.g., "S3Location"
	CFType         string // e.g., "AWS::DataBrew::Dataset.S3Location"
	ParentResource string // e.g., "Dataset"
	Documentation  string
	Properties     map[string]ParsedProperty
}

// ParsedResource is a parsed resource type.
type ParsedResource struct {
	Name          string // e.g., "Job"
	CFType        string // e.g., "AWS::DataBrew::Job"
	Documentation string
	Properties    map[string]ParsedProperty
	Attributes    map[string]ParsedAttribute
}

// ParsedProperty is a parsed property.
type ParsedProperty struct {
	Name          string // CloudFormation name, used as the json tag
	GoName        string // exported Go field name
	GoType        string // any, []any or map[string]any
	Documentation string
	Required      bool
	IsList        bool
	IsMap         bool
	ItemType      string // property type name for lists, maps and nested structs
}

// ParsedAttribute is a parsed resource attribute (for GetAtt).
type ParsedAttribute struct {
	Name   string // e.g., "Arn" or "HlsIngest.ingestEndpoints"
	GoName string // e.g., "Arn"
}

// Selection restricts generation to services and, optionally, to a subset of
// a service's resources. A nil resource list selects the whole service.
type Selection map[string][]string

// defaultSelection is what `go run ./codegen` generates without --service.
var defaultSelection = Selection{
	"databrew":     nil,
	"mediapackage": nil,
	"lambda":       {"LayerVersion"},
}

func (s Selection) includes(service, resource string) bool {
	names, ok := s[service]
	if !ok {
		return false
	}
	if names == nil {
		return true
	}
	for _, n := range names {
		if n == resource {
			return true
		}
	}
	return false
}

// parseSpec organizes the CloudFormation spec by service.
func parseSpec(cfnSpec *spec.Spec, sel Selection) []*Service {
	services := make(map[string]*Service)

	for cfType, resDef := range cfnSpec.ResourceTypes {
		// AWS::DataBrew::Job -> service=databrew, name=Job
		parts := strings.Split(cfType, "::")
		if len(parts) != 3 || parts[0] != "AWS" {
			continue
		}

		serviceName := strings.ToLower(parts[1])
		resourceName := parts[2]
		if !sel.includes(serviceName, resourceName) {
			continue
		}

		svc, ok := services[serviceName]
		if !ok {
			svc = &Service{
				Name:          serviceName,
				CFPrefix:      "AWS::" + parts[1],
				Resources:     make(map[string]ParsedResource),
				PropertyTypes: make(map[string]ParsedPropertyType),
			}
			services[serviceName] = svc
		}

		resource := ParsedResource{
			Name:          resourceName,
			CFType:        cfType,
			Documentation: resDef.Documentation,
			Properties:    make(map[string]ParsedProperty),
			Attributes:    make(map[string]ParsedAttribute),
		}
		for propName, propDef := range resDef.Properties {
			resource.Properties[propName] = parseProperty(propName, propDef)
		}
		for attrName := range resDef.Attributes {
			resource.Attributes[attrName] = ParsedAttribute{
				Name:   attrName,
				GoName: attributeGoName(attrName),
			}
		}

		svc.Resources[resourceName] = resource
	}

	for cfType, propTypeDef := range cfnSpec.PropertyTypes {
		// AWS::DataBrew::Dataset.S3Location
		parts := strings.Split(cfType, "::")
		if len(parts) != 3 || parts[0] != "AWS" {
			continue
		}
		dotParts := strings.SplitN(parts[2], ".", 2)
		if len(dotParts) != 2 {
			continue
		}

		serviceName := strings.ToLower(parts[1])
		parentResource := dotParts[0]
		propTypeName := dotParts[1]

		svc, ok := services[serviceName]
		if !ok {
			continue
		}
		if _, ok := svc.Resources[parentResource]; !ok {
			continue
		}

		properties := make(map[string]ParsedProperty)
		for propName, propDef := range propTypeDef.Properties {
			properties[propName] = parseProperty(propName, propDef)
		}

		// Qualified key: the same property type name (S3Location) appears
		// under several resources with different shapes.
		svc.PropertyTypes[parentResource+"_"+propTypeName] = ParsedPropertyType{
			Name:           propTypeName,
			CFType:         cfType,
			ParentResource: parentResource,
			Documentation:  propTypeDef.Documentation,
			Properties:     properties,
		}
	}

	result := make([]*Service, 0, len(services))
	for _, svc := range services {
		result = append(result, svc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// parseProperty converts a CloudFormation property definition to our parsed format.
// Every property is typed any, []any or map[string]any so that literal
// values, nested structs and intrinsic functions are all assignable.
func parseProperty(name string, def spec.Property) ParsedProperty {
	prop := ParsedProperty{
		Name:          name,
		GoName:        goFieldName(name),
		Documentation: def.Documentation,
		Required:      def.Required,
		GoType:        "any",
	}

	switch {
	case def.PrimitiveType != "":
	case def.Type == "List":
		prop.IsList = true
		prop.GoType = "[]any"
		prop.ItemType = def.ItemType
	case def.Type == "Map":
		prop.IsMap = true
		prop.GoType = "map[string]any"
		prop.ItemType = def.ItemType
	case def.Type != "":
		prop.ItemType = def.Type
	}

	// Tags are shared across services and rendered with intrinsics.Tag.
	if prop.ItemType == "Tag" {
		prop.ItemType = ""
	}

	return prop
}

// reservedFieldNames collide with generated methods or read ambiguously
// next to ResourceType; they get a trailing underscore.
var reservedFieldNames = map[string]bool{
	"Type":         true,
	"ResourceType": true,
	"Validate":     true,
}

// goFieldName exports a CloudFormation property name as a Go field name.
// e.g., "ingestEndpoints" -> "IngestEndpoints", "Type" -> "Type_"
func goFieldName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	goName := string(r)
	if reservedFieldNames[goName] {
		goName += "_"
	}
	return goName
}

// attributeGoName flattens dotted attribute names.
// e.g., "HlsIngest.ingestEndpoints" -> "HlsIngestIngestEndpoints"
func attributeGoName(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, ".") {
		r := []rune(part)
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

// toSnakeCase converts PascalCase to snake_case for file names.
// e.g., "OriginEndpoint" -> "origin_endpoint"
func toSnakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// sortedKeys returns map keys in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
