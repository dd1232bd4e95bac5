// Package template assembles CloudFormation templates from resource values
// and orders resources by their dependencies.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/serialize"
)

// FormatVersion is the only AWSTemplateFormatVersion CloudFormation accepts.
const FormatVersion = "2010-09-09"

var logicalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidLogicalID reports whether id is an acceptable CloudFormation logical ID.
func ValidLogicalID(id string) bool {
	return logicalIDPattern.MatchString(id)
}

// Entry is one resource to be placed in the template.
type Entry struct {
	LogicalID           string
	Resource            wetwire.Resource
	DependsOn           []string
	Condition           string
	DeletionPolicy      string
	UpdateReplacePolicy string
	Metadata            map[string]any
}

// Builder constructs CloudFormation templates from resource values.
type Builder struct {
	description string
	resources   map[string]Entry
	parameters  map[string]wetwire.Parameter
	conditions  map[string]any
	mappings    map[string]any
	outputs     map[string]wetwire.Output
}

// NewBuilder creates an empty template builder.
func NewBuilder() *Builder {
	return &Builder{
		resources:  make(map[string]Entry),
		parameters: make(map[string]wetwire.Parameter),
		conditions: make(map[string]any),
		mappings:   make(map[string]any),
		outputs:    make(map[string]wetwire.Output),
	}
}

// SetDescription sets the template Description.
func (b *Builder) SetDescription(description string) {
	b.description = description
}

// AddResource registers a resource. Resources and parameters share one
// namespace since both are targets of Ref.
func (b *Builder) AddResource(e Entry) error {
	if err := b.checkName(e.LogicalID); err != nil {
		return err
	}
	if e.Resource == nil {
		return fmt.Errorf("resource %s is nil", e.LogicalID)
	}
	if rv := reflect.ValueOf(e.Resource); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return fmt.Errorf("resource %s is nil", e.LogicalID)
	}
	b.resources[e.LogicalID] = e
	return nil
}

// AddParameter registers a template parameter.
func (b *Builder) AddParameter(name string, p wetwire.Parameter) error {
	if err := b.checkName(name); err != nil {
		return err
	}
	b.parameters[name] = p
	return nil
}

// AddCondition registers a named condition expression.
func (b *Builder) AddCondition(name string, expr any) error {
	if !ValidLogicalID(name) {
		return fmt.Errorf("invalid condition name %q: must be alphanumeric", name)
	}
	if _, exists := b.conditions[name]; exists {
		return fmt.Errorf("duplicate condition %q", name)
	}
	b.conditions[name] = expr
	return nil
}

// AddMapping registers a Fn::FindInMap lookup table.
func (b *Builder) AddMapping(name string, m map[string]any) error {
	if !ValidLogicalID(name) {
		return fmt.Errorf("invalid mapping name %q: must be alphanumeric", name)
	}
	if _, exists := b.mappings[name]; exists {
		return fmt.Errorf("duplicate mapping %q", name)
	}
	b.mappings[name] = m
	return nil
}

// AddOutput registers a template output.
func (b *Builder) AddOutput(name string, o wetwire.Output) error {
	if !ValidLogicalID(name) {
		return fmt.Errorf("invalid output name %q: must be alphanumeric", name)
	}
	if _, exists := b.outputs[name]; exists {
		return fmt.Errorf("duplicate output %q", name)
	}
	b.outputs[name] = o
	return nil
}

func (b *Builder) checkName(name string) error {
	if !ValidLogicalID(name) {
		return fmt.Errorf("invalid logical ID %q: must be alphanumeric", name)
	}
	if _, exists := b.resources[name]; exists {
		return fmt.Errorf("duplicate logical ID %q", name)
	}
	if _, exists := b.parameters[name]; exists {
		return fmt.Errorf("duplicate logical ID %q: already used by a parameter", name)
	}
	return nil
}

// Build validates every resource and renders the template. All problems
// found are returned together.
func (b *Builder) Build() (*wetwire.Template, error) {
	template := &wetwire.Template{
		AWSTemplateFormatVersion: FormatVersion,
		Description:              b.description,
		Resources:                make(map[string]wetwire.ResourceDef, len(b.resources)),
	}

	var errs error

	if len(b.parameters) > 0 {
		template.Parameters = make(map[string]wetwire.Parameter, len(b.parameters))
		for name, p := range b.parameters {
			def, err := serialize.Value(p.Default)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("parameter %s: %w", name, err))
				continue
			}
			p.Default = def
			template.Parameters[name] = p
		}
	}

	if len(b.conditions) > 0 {
		template.Conditions = make(map[string]any, len(b.conditions))
		for name, expr := range b.conditions {
			v, err := serialize.Value(expr)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("condition %s: %w", name, err))
				continue
			}
			template.Conditions[name] = v
		}
	}

	if len(b.mappings) > 0 {
		template.Mappings = make(map[string]any, len(b.mappings))
		for name, m := range b.mappings {
			template.Mappings[name] = m
		}
	}

	for _, name := range sortedKeys(b.resources) {
		def, err := b.buildResource(b.resources[name])
		if err != nil {
			for _, e := range multierr.Errors(err) {
				errs = multierr.Append(errs, fmt.Errorf("synthesizing %s: %w", name, e))
			}
			continue
		}
		template.Resources[name] = def
	}

	if len(b.outputs) > 0 {
		template.Outputs = make(map[string]wetwire.Output, len(b.outputs))
		for _, name := range sortedKeys(b.outputs) {
			out, err := b.buildOutput(b.outputs[name])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("output %s: %w", name, err))
				continue
			}
			template.Outputs[name] = out
		}
	}

	if errs != nil {
		return nil, errs
	}

	if _, err := TopologicalSort(Dependencies(template)); err != nil {
		return nil, err
	}

	return template, nil
}

func (b *Builder) buildResource(e Entry) (wetwire.ResourceDef, error) {
	var errs error

	if err := serialize.Validate(e.Resource); err != nil {
		errs = multierr.Append(errs, err)
	}

	props, err := serialize.Resource(e.Resource)
	if err != nil {
		return wetwire.ResourceDef{}, multierr.Append(errs, err)
	}

	for _, ref := range References(props) {
		errs = multierr.Append(errs, b.checkReference(ref))
	}

	for _, dep := range e.DependsOn {
		if _, ok := b.resources[dep]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("DependsOn target %q is not a resource", dep))
		}
	}

	if e.Condition != "" {
		if _, ok := b.conditions[e.Condition]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("unknown condition %q", e.Condition))
		}
	}

	var metadata map[string]any
	if len(e.Metadata) > 0 {
		v, err := serialize.Value(e.Metadata)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("metadata: %w", err))
		} else {
			metadata, _ = v.(map[string]any)
		}
	}

	if errs != nil {
		return wetwire.ResourceDef{}, errs
	}

	def := wetwire.ResourceDef{
		Type:                e.Resource.ResourceType(),
		DependsOn:           uniqueSorted(e.DependsOn),
		Condition:           e.Condition,
		DeletionPolicy:      e.DeletionPolicy,
		UpdateReplacePolicy: e.UpdateReplacePolicy,
		Metadata:            metadata,
	}
	if len(props) > 0 {
		def.Properties = props
	}
	return def, nil
}

func (b *Builder) buildOutput(o wetwire.Output) (wetwire.Output, error) {
	value, err := serialize.Value(o.Value)
	if err != nil {
		return o, err
	}
	if value == nil {
		return o, errors.New("output has no value")
	}
	for _, ref := range References(value) {
		if err := b.checkReference(ref); err != nil {
			return o, err
		}
	}
	o.Value = value
	if o.Export != nil {
		name, err := serialize.Value(o.Export.Name)
		if err != nil {
			return o, fmt.Errorf("export name: %w", err)
		}
		o.Export = &wetwire.Export{Name: name}
	}
	if o.Condition != "" {
		if _, ok := b.conditions[o.Condition]; !ok {
			return o, fmt.Errorf("unknown condition %q", o.Condition)
		}
	}
	return o, nil
}

func (b *Builder) checkReference(ref Reference) error {
	if ref.IsPseudo() {
		return nil
	}
	if _, ok := b.resources[ref.Target]; ok {
		return nil
	}
	if _, ok := b.parameters[ref.Target]; ok {
		if ref.Kind == KindGetAtt {
			return fmt.Errorf("%s target %q is a parameter, not a resource", ref.Kind, ref.Target)
		}
		return nil
	}
	return fmt.Errorf("unknown %s target %q", ref.Kind, ref.Target)
}

// Dependencies returns, for each resource in t, the other resources it
// depends on through Ref, Fn::GetAtt, Fn::Sub or DependsOn.
func Dependencies(t *wetwire.Template) map[string][]string {
	deps := make(map[string][]string, len(t.Resources))
	for name, def := range t.Resources {
		seen := make(map[string]bool)
		for _, ref := range References(def.Properties) {
			if _, ok := t.Resources[ref.Target]; ok && ref.Target != name {
				seen[ref.Target] = true
			}
		}
		for _, dep := range def.DependsOn {
			if _, ok := t.Resources[dep]; ok {
				seen[dep] = true
			}
		}
		deps[name] = sortedKeys(seen)
	}
	return deps
}

// TopologicalSort orders the keys of deps so every resource follows its
// dependencies. Ties are broken alphabetically.
func TopologicalSort(deps map[string][]string) ([]string, error) {
	dependents := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range deps {
		inDegree[name] += 0
	}
	for name, ds := range deps {
		for _, dep := range ds {
			if _, exists := deps[dep]; exists {
				dependents[dep] = append(dependents[dep], name)
				inDegree[name]++
			}
		}
	}

	// Kahn's algorithm
	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, next := range dependents[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(deps) {
		return nil, detectCycle(deps)
	}
	return result, nil
}

// detectCycle finds and reports one cycle in the dependency graph.
func detectCycle(deps map[string][]string) error {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	var stack []string
	var cycle []string

	var visit func(node string) bool
	visit = func(node string) bool {
		visited[node] = true
		onPath[node] = true
		stack = append(stack, node)

		for _, dep := range deps[node] {
			if _, exists := deps[dep]; !exists {
				continue
			}
			if onPath[dep] {
				for i, n := range stack {
					if n == dep {
						cycle = append(append([]string{}, stack[i:]...), dep)
						return true
					}
				}
			}
			if !visited[dep] && visit(dep) {
				return true
			}
		}

		stack = stack[:len(stack)-1]
		onPath[node] = false
		return false
	}

	for _, name := range sortedKeys(deps) {
		if !visited[name] && visit(name) {
			break
		}
	}

	if len(cycle) > 0 {
		return fmt.Errorf("circular dependency detected: %s", strings.Join(cycle, " -> "))
	}
	return errors.New("circular dependency detected")
}

// ToJSON serializes the template to JSON.
func ToJSON(t *wetwire.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *wetwire.Template) ([]byte, error) {
	return yaml.Marshal(t)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func uniqueSorted(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return sortedKeys(set)
}
