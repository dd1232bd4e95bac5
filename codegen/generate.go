package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// GenerationStats tracks what was generated.
type GenerationStats struct {
	Services      int
	Resources     int
	PropertyTypes int
	FilesWritten  int
}

const header = "// Code generated by wetwire-l1 codegen. DO NOT EDIT.\n\n"

var resourceTmpl = template.Must(template.New("resource").Parse(`package {{.Package}}

import (
	wetwire "github.com/lex00/wetwire-l1-go"
)

// {{.Name}} represents {{.CFType}}.
{{- if .Documentation}}
//
// See: {{.Documentation}}
{{- end}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.Name}},omitempty\"`" + `
{{- end}}
{{- if .Attributes}}
{{range .Attributes}}
	{{.GoName}} wetwire.AttrRef ` + "`json:\"-\"`" + `
{{- end}}
{{- end}}
}

// ResourceType returns "{{.CFType}}".
func (r {{.Name}}) ResourceType() string { return "{{.CFType}}" }
{{if .Required}}
// Validate reports required properties that are not set.
func (r {{.Name}}) Validate() error {
	return wetwire.CheckRequired("{{.CFType}}",
{{- range .Required}}
		wetwire.Required("{{.Name}}", r.{{.GoName}}),
{{- end}}
	)
}
{{end}}`))

var propertyTypesTmpl = template.Must(template.New("types").Parse(`package {{.Package}}
{{if .NeedsImport}}
import (
	wetwire "github.com/lex00/wetwire-l1-go"
)
{{end}}
{{- range .Types}}
// {{.GoName}} represents {{.CFType}}.
{{- if .Documentation}}
//
// See: {{.Documentation}}
{{- end}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} ` + "`json:\"{{.Name}},omitempty\"`" + `
{{- end}}
}
{{if .Required}}
// Validate reports required properties that are not set.
func (p {{.GoName}}) Validate() error {
	return wetwire.CheckRequired("{{.CFType}}",
{{- range .Required}}
		wetwire.Required("{{.Name}}", p.{{.GoName}}),
{{- end}}
	)
}
{{end}}
{{end}}`))

var docTmpl = template.Must(template.New("doc").Parse(`// Package {{.Package}} provides Go types for {{.CFPrefix}} CloudFormation resources.
//
// Resources:
{{- range .Resources}}
//   - {{.}}
{{- end}}
package {{.Package}}
`))

type fieldData struct {
	Name   string
	GoName string
	GoType string
}

type resourceData struct {
	Package       string
	Name          string
	CFType        string
	Documentation string
	Fields        []fieldData
	Required      []fieldData
	Attributes    []ParsedAttribute
}

type propertyTypeData struct {
	GoName        string
	CFType        string
	Documentation string
	Fields        []fieldData
	Required      []fieldData
}

// generateCode writes one package per service under outputDir/resources.
func generateCode(services []*Service, outputDir string, dryRun bool) (*GenerationStats, error) {
	stats := &GenerationStats{}
	for _, svc := range services {
		n, err := generateService(svc, outputDir, dryRun)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", svc.Name, err)
		}
		stats.Services++
		stats.Resources += len(svc.Resources)
		stats.PropertyTypes += len(svc.PropertyTypes)
		stats.FilesWritten += n
	}
	return stats, nil
}

func generateService(svc *Service, outputDir string, dryRun bool) (int, error) {
	dir := filepath.Join(outputDir, "resources", svc.Name)
	files := make(map[string][]byte)

	for _, resName := range sortedKeys(svc.Resources) {
		src, err := generateResource(svc, svc.Resources[resName])
		if err != nil {
			return 0, fmt.Errorf("resource %s: %w", resName, err)
		}
		files[toSnakeCase(resName)+".go"] = src

		types, err := generateResourcePropertyTypes(svc, resName)
		if err != nil {
			return 0, fmt.Errorf("property types for %s: %w", resName, err)
		}
		if types != nil {
			files[toSnakeCase(resName)+"_types.go"] = types
		}
	}

	doc, err := generateDoc(svc)
	if err != nil {
		return 0, err
	}
	files["doc.go"] = doc

	if dryRun {
		for _, name := range sortedKeys(files) {
			fmt.Printf("Would write: %s\n", filepath.Join(dir, name))
		}
		return 0, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), src, 0644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return len(files), nil
}

func generateResource(svc *Service, res ParsedResource) ([]byte, error) {
	data := resourceData{
		Package:       svc.Name,
		Name:          res.Name,
		CFType:        res.CFType,
		Documentation: res.Documentation,
	}
	data.Fields, data.Required = fieldsOf(res.Properties)
	for _, name := range sortedKeys(res.Attributes) {
		data.Attributes = append(data.Attributes, res.Attributes[name])
	}
	return render(resourceTmpl, data)
}

// generateResourcePropertyTypes renders every property type nested under
// resName. It returns nil when the resource has none.
func generateResourcePropertyTypes(svc *Service, resName string) ([]byte, error) {
	var types []propertyTypeData
	needsImport := false
	for _, key := range sortedKeys(svc.PropertyTypes) {
		pt := svc.PropertyTypes[key]
		if pt.ParentResource != resName {
			continue
		}
		d := propertyTypeData{
			GoName:        key,
			CFType:        pt.CFType,
			Documentation: pt.Documentation,
		}
		d.Fields, d.Required = fieldsOf(pt.Properties)
		if len(d.Required) > 0 {
			needsImport = true
		}
		types = append(types, d)
	}
	if len(types) == 0 {
		return nil, nil
	}
	return render(propertyTypesTmpl, map[string]any{
		"Package":     svc.Name,
		"NeedsImport": needsImport,
		"Types":       types,
	})
}

func generateDoc(svc *Service) ([]byte, error) {
	return render(docTmpl, map[string]any{
		"Package":   svc.Name,
		"CFPrefix":  svc.CFPrefix,
		"Resources": sortedKeys(svc.Resources),
	})
}

func fieldsOf(props map[string]ParsedProperty) (fields, required []fieldData) {
	for _, name := range sortedKeys(props) {
		p := props[name]
		f := fieldData{Name: p.Name, GoName: p.GoName, GoType: p.GoType}
		fields = append(fields, f)
		if p.Required {
			required = append(required, f)
		}
	}
	return fields, required
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, strings.TrimSpace(buf.String()))
	}
	return src, nil
}
