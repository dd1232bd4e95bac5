package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// generateRegistry creates resources/registry.go describing every generated
// resource and property type. The validate and list commands read it to check
// templates that were not produced by this module.
func generateRegistry(services []*Service, outputDir string, dryRun bool) error {
	schemas := make(map[string]string)       // CF type -> rendered Schema literal
	propertyTypes := make(map[string]string) // "service.Resource_Type" -> rendered Schema literal

	// PropertyTypeMap: "service.Parent.PropertyName" -> "Resource_ActualTypeName"
	// where Parent is a resource name or a qualified property type name.
	propMap := make(map[string]string)

	for _, svc := range services {
		for resName, res := range svc.Resources {
			schemas[res.CFType] = schemaLiteral(svc.Name+"."+resName, res.Properties, attributeNames(res.Attributes))
			addNestedTypes(propMap, svc, resName, resName, res.Properties)
		}
		for key, pt := range svc.PropertyTypes {
			propertyTypes[svc.Name+"."+key] = schemaLiteral(svc.Name+"."+key, pt.Properties, nil)
			addNestedTypes(propMap, svc, key, pt.ParentResource, pt.Properties)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("package resources\n\n")

	buf.WriteString("// Schemas describes every generated resource type, keyed by CloudFormation type.\n")
	buf.WriteString("var Schemas = map[string]Schema{\n")
	for _, key := range sortedKeys(schemas) {
		fmt.Fprintf(&buf, "\t%q: %s,\n", key, schemas[key])
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// PropertyTypes describes every generated property type, keyed by \"service.Resource_Type\".\n")
	buf.WriteString("var PropertyTypes = map[string]Schema{\n")
	for _, key := range sortedKeys(propertyTypes) {
		fmt.Fprintf(&buf, "\t%q: %s,\n", key, propertyTypes[key])
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// PropertyTypeMap maps property paths to their property type names.\n")
	buf.WriteString("// Format: \"service.ParentType.PropertyName\" -> \"Resource_ActualTypeName\"\n")
	buf.WriteString("var PropertyTypeMap = map[string]string{\n")
	for _, key := range sortedKeys(propMap) {
		fmt.Fprintf(&buf, "\t%q: %q,\n", key, propMap[key])
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting registry: %w", err)
	}

	resourcesDir := filepath.Join(outputDir, "resources")
	registryFile := filepath.Join(resourcesDir, "registry.go")

	if dryRun {
		fmt.Printf("Would write: %s (%d resources, %d property types, %d mappings)\n",
			registryFile, len(schemas), len(propertyTypes), len(propMap))
		return nil
	}

	if err := os.MkdirAll(resourcesDir, 0755); err != nil {
		return fmt.Errorf("creating resources directory: %w", err)
	}
	if err := os.WriteFile(registryFile, src, 0644); err != nil {
		return fmt.Errorf("writing registry file: %w", err)
	}

	fmt.Printf("Generated registry with %d resources, %d property types, %d mappings: %s\n",
		len(schemas), len(propertyTypes), len(propMap), registryFile)
	return nil
}

// addNestedTypes records which property type each non-primitive property of
// parent holds. Property types are only ever referenced from within the same
// resource namespace.
func addNestedTypes(propMap map[string]string, svc *Service, parent, resource string, props map[string]ParsedProperty) {
	for propName, prop := range props {
		if prop.ItemType == "" {
			continue
		}
		typeName := resource + "_" + prop.ItemType
		if _, ok := svc.PropertyTypes[typeName]; !ok {
			continue
		}
		propMap[fmt.Sprintf("%s.%s.%s", svc.Name, parent, propName)] = typeName
	}
}

func schemaLiteral(goType string, props map[string]ParsedProperty, attrs []string) string {
	var required []string
	for name, p := range props {
		if p.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)

	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "\t\tGoType: %q,\n", goType)
	if len(required) > 0 {
		fmt.Fprintf(&sb, "\t\tRequired: %s,\n", stringSlice(required))
	}
	fmt.Fprintf(&sb, "\t\tProperties: %s,\n", stringSlice(sortedKeys(props)))
	if len(attrs) > 0 {
		fmt.Fprintf(&sb, "\t\tAttributes: %s,\n", stringSlice(attrs))
	}
	var lists, maps []string
	for _, name := range sortedKeys(props) {
		switch {
		case props[name].IsList:
			lists = append(lists, name)
		case props[name].IsMap:
			maps = append(maps, name)
		}
	}
	if len(lists) > 0 {
		fmt.Fprintf(&sb, "\t\tLists: %s,\n", stringSlice(lists))
	}
	if len(maps) > 0 {
		fmt.Fprintf(&sb, "\t\tMaps: %s,\n", stringSlice(maps))
	}
	sb.WriteString("\t}")
	return sb.String()
}

func attributeNames(attrs map[string]ParsedAttribute) []string {
	return sortedKeys(attrs)
}

func stringSlice(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
