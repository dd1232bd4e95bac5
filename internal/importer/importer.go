// Package importer converts an existing CloudFormation template into Go
// source that rebuilds it with the stack package.
//
// The generated file holds a single Build function:
//
//	func Build() *stack.Stack {
//		stk := stack.New("media", stack.WithDescription("live channel"))
//		liveChannel := &mediapackage.Channel{Id: "live"}
//		stk.Add("LiveChannel", liveChannel)
//		...
//		return stk
//	}
//
// Resources are emitted in dependency order so that GetAtt values can use
// the bound AttrRef fields of resources added earlier.
package importer

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
	"github.com/lex00/wetwire-l1-go/resources"
)

const (
	modulePath     = "github.com/lex00/wetwire-l1-go"
	intrinsicsPath = modulePath + "/intrinsics"
	stackPath      = modulePath + "/stack"
)

// Options controls code generation.
type Options struct {
	// Package is the package clause of the generated file. Defaults to "infra".
	Package string
	// Name is the stack name passed to stack.New. Defaults to "imported".
	Name string
	// Source names the template in the generated file header.
	Source string
}

// Result is a generated Go file.
type Result struct {
	Source    []byte
	Resources int
	// Warnings lists template content that could not be carried over
	// exactly, such as properties missing from the resource schema.
	Warnings []string
}

// GenerateFile loads the template at path and generates Go source for it.
// The stack name defaults to the file name without its extension.
func GenerateFile(path string, opts Options) (*Result, error) {
	t, err := template.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(path)
	}
	return Generate(t, opts)
}

// Generate produces Go source that synthesizes t.
func Generate(t *wetwire.Template, opts Options) (*Result, error) {
	if opts.Package == "" {
		opts.Package = "infra"
	}
	if opts.Name == "" {
		opts.Name = "imported"
	}

	var errs error
	for _, name := range sortedKeys(t.Resources) {
		if _, ok := resources.Lookup(t.Resources[name].Type); !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: unsupported resource type %s", name, t.Resources[name].Type))
		}
	}
	if errs != nil {
		return nil, errs
	}

	order, err := template.TopologicalSort(template.Dependencies(t))
	if err != nil {
		return nil, fmt.Errorf("ordering resources: %w", err)
	}

	g := newGenerator(t)
	src, err := g.file(opts, order)
	if err != nil {
		return nil, err
	}

	for _, w := range g.warnings {
		zap.L().Warn("import", zap.String("detail", w))
	}
	return &Result{
		Source:    src,
		Resources: len(t.Resources),
		Warnings:  g.warnings,
	}, nil
}

type generator struct {
	tmpl *wetwire.Template

	imports map[string]bool
	// vars maps parameter and resource logical IDs to Go variable names.
	vars  map[string]string
	taken map[string]bool
	// declared holds resources already added to the stack.
	declared   map[string]bool
	usedParams map[string]bool
	warnings   []string
}

func newGenerator(t *wetwire.Template) *generator {
	g := &generator{
		tmpl:       t,
		imports:    map[string]bool{stackPath: true},
		vars:       make(map[string]string),
		taken:      make(map[string]bool),
		declared:   make(map[string]bool),
		usedParams: make(map[string]bool),
	}
	for _, name := range sortedKeys(t.Parameters) {
		g.vars[name] = g.newVar(name)
	}
	for _, name := range sortedKeys(t.Resources) {
		g.vars[name] = g.newVar(name)
	}
	return g
}

func (g *generator) warnf(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

// newVar returns an unused local variable name for a logical ID.
func (g *generator) newVar(logicalID string) string {
	base := varName(logicalID)
	if reservedNames[base] {
		base += "Res"
	}
	name := base
	for i := 2; g.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	g.taken[name] = true
	return name
}

func (g *generator) file(opts Options, order []string) ([]byte, error) {
	var body strings.Builder

	// Everything except parameters is rendered first so that only the
	// parameters actually referenced get a variable.
	mappings := g.mappings()
	conditions := g.conditions()
	var resourceCode strings.Builder
	for _, name := range order {
		resourceCode.WriteString(g.resource(name))
	}
	outputs := g.outputs()
	params := g.parameters()

	if g.tmpl.Description != "" {
		fmt.Fprintf(&body, "stk := stack.New(%q, stack.WithDescription(%q))\n", opts.Name, g.tmpl.Description)
	} else {
		fmt.Fprintf(&body, "stk := stack.New(%q)\n", opts.Name)
	}
	for _, section := range []string{params, mappings, conditions, resourceCode.String(), outputs} {
		if section != "" {
			body.WriteString("\n")
			body.WriteString(section)
		}
	}
	body.WriteString("\nreturn stk\n")

	var buf bytes.Buffer
	if opts.Source != "" {
		fmt.Fprintf(&buf, "// Package %s was generated by wetwire-l1 import from %s.\n", opts.Package, opts.Source)
	} else {
		fmt.Fprintf(&buf, "// Package %s was generated by wetwire-l1 import.\n", opts.Package)
	}
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	buf.WriteString("import (\n")
	for _, imp := range sortedKeys(g.imports) {
		if imp == intrinsicsPath {
			fmt.Fprintf(&buf, "\t. %q\n", imp)
		} else {
			fmt.Fprintf(&buf, "\t%q\n", imp)
		}
	}
	buf.WriteString(")\n\n")
	fmt.Fprintf(&buf, "// Build returns the %s stack.\n", opts.Name)
	buf.WriteString("func Build() *stack.Stack {\n")
	buf.WriteString(body.String())
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func (g *generator) parameters() string {
	var sb strings.Builder
	for _, name := range sortedKeys(g.tmpl.Parameters) {
		lit := g.parameter(g.tmpl.Parameters[name])
		if g.usedParams[name] {
			fmt.Fprintf(&sb, "%s := stk.AddParameter(%q, %s)\n", g.vars[name], name, lit)
		} else {
			fmt.Fprintf(&sb, "stk.AddParameter(%q, %s)\n", name, lit)
		}
	}
	return sb.String()
}

func (g *generator) parameter(p wetwire.Parameter) string {
	g.imports[intrinsicsPath] = true
	var fields []string
	if p.Type != "" && p.Type != "String" {
		fields = append(fields, fmt.Sprintf("Type: %q", p.Type))
	}
	if p.Description != "" {
		fields = append(fields, fmt.Sprintf("Description: %q", p.Description))
	}
	if p.Default != nil {
		fields = append(fields, "Default: "+g.value(p.Default, ""))
	}
	if len(p.AllowedValues) > 0 {
		fields = append(fields, "AllowedValues: "+g.value(p.AllowedValues, ""))
	}
	if p.AllowedPattern != "" {
		fields = append(fields, fmt.Sprintf("AllowedPattern: %q", p.AllowedPattern))
	}
	if p.ConstraintDescription != "" {
		fields = append(fields, fmt.Sprintf("ConstraintDescription: %q", p.ConstraintDescription))
	}
	if p.MinLength != nil {
		fields = append(fields, fmt.Sprintf("MinLength: IntPtr(%d)", *p.MinLength))
	}
	if p.MaxLength != nil {
		fields = append(fields, fmt.Sprintf("MaxLength: IntPtr(%d)", *p.MaxLength))
	}
	if p.MinValue != nil {
		fields = append(fields, "MinValue: Float64Ptr("+number(*p.MinValue)+")")
	}
	if p.MaxValue != nil {
		fields = append(fields, "MaxValue: Float64Ptr("+number(*p.MaxValue)+")")
	}
	if p.NoEcho {
		fields = append(fields, "NoEcho: true")
	}
	if len(fields) == 0 {
		return "Parameter{}"
	}
	return "Parameter{\n" + strings.Join(fields, ",\n") + ",\n}"
}

func (g *generator) mappings() string {
	var sb strings.Builder
	for _, name := range sortedKeys(g.tmpl.Mappings) {
		m, ok := g.tmpl.Mappings[name].(map[string]any)
		if !ok {
			g.warnf("mapping %s: not a map, dropped", name)
			continue
		}
		fmt.Fprintf(&sb, "stk.AddMapping(%q, %s)\n", name, g.jsonLiteral(m))
	}
	return sb.String()
}

func (g *generator) conditions() string {
	var sb strings.Builder
	for _, name := range sortedKeys(g.tmpl.Conditions) {
		fmt.Fprintf(&sb, "stk.AddCondition(%q, %s)\n", name, g.value(g.tmpl.Conditions[name], ""))
	}
	return sb.String()
}

func (g *generator) resource(name string) string {
	def := g.tmpl.Resources[name]
	schema, _ := resources.Lookup(def.Type)
	svc, _, _ := strings.Cut(schema.GoType, ".")
	g.imports[modulePath+"/resources/"+svc] = true

	v := g.vars[name]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s := &%s{\n", v, schema.GoType)
	sb.WriteString(g.fields(name, def.Type, schema, def.Properties))
	sb.WriteString("}\n")

	var opts []string
	if len(def.DependsOn) > 0 {
		deps := make([]string, len(def.DependsOn))
		for i, d := range def.DependsOn {
			deps[i] = fmt.Sprintf("%q", d)
		}
		opts = append(opts, "stack.DependsOn("+strings.Join(deps, ", ")+")")
	}
	if def.Condition != "" {
		opts = append(opts, fmt.Sprintf("stack.WithCondition(%q)", def.Condition))
	}
	if def.DeletionPolicy != "" {
		opts = append(opts, fmt.Sprintf("stack.DeletionPolicy(%q)", def.DeletionPolicy))
	}
	if def.UpdateReplacePolicy != "" {
		opts = append(opts, fmt.Sprintf("stack.UpdateReplacePolicy(%q)", def.UpdateReplacePolicy))
	}
	if len(def.Metadata) > 0 {
		opts = append(opts, "stack.WithMetadata("+g.jsonLiteral(def.Metadata)+")")
	}

	fmt.Fprintf(&sb, "stk.Add(%q, %s", name, v)
	for _, o := range opts {
		sb.WriteString(", ")
		sb.WriteString(o)
	}
	sb.WriteString(")\n\n")

	g.declared[name] = true
	return sb.String()
}

// fields renders the keyed fields of a resource or property type literal.
// parent is the CloudFormation type or property type key used to resolve
// nested property types.
func (g *generator) fields(path, parent string, schema resources.Schema, props map[string]any) string {
	var sb strings.Builder
	for _, key := range sortedKeys(props) {
		if !schema.HasProperty(key) {
			g.warnf("%s.%s: unknown property dropped", path, key)
			continue
		}
		val := props[key]
		childKey, _, ok := resources.Nested(parent, key)
		if !ok {
			childKey = ""
		}

		var code string
		switch {
		case schema.IsMap(key):
			m, isMap := val.(map[string]any)
			if !isMap {
				g.warnf("%s.%s: expected a map, dropped", path, key)
				continue
			}
			code = g.jsonLiteral(m)
		case schema.IsList(key):
			items, isList := val.([]any)
			if !isList {
				g.warnf("%s.%s: list value wrapped in a single-element list", path, key)
				items = []any{val}
			}
			if key == "Tags" && childKey == "" {
				code = g.tags(items)
			} else {
				code = g.list(items, childKey)
			}
		default:
			code = g.value(val, childKey)
		}
		fmt.Fprintf(&sb, "%s: %s,\n", goFieldName(key), code)
	}
	return sb.String()
}

func (g *generator) outputs() string {
	var sb strings.Builder
	for _, name := range sortedKeys(g.tmpl.Outputs) {
		out := g.tmpl.Outputs[name]
		fields := []string{}
		if out.Description != "" {
			fields = append(fields, fmt.Sprintf("Description: %q", out.Description))
		}
		fields = append(fields, "Value: "+g.value(out.Value, ""))
		if out.Condition != "" {
			fields = append(fields, fmt.Sprintf("Condition: %q", out.Condition))
		}
		if out.Export != nil {
			fields = append(fields, "Export: &stack.Export{Name: "+g.value(out.Export.Name, "")+"}")
		}
		fmt.Fprintf(&sb, "stk.AddOutput(%q, stack.Output{%s})\n", name, strings.Join(fields, ", "))
	}
	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
