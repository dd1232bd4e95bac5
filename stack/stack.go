// Package stack collects resources, parameters, conditions and outputs and
// synthesizes them into a CloudFormation template.
//
//	stk := stack.New("media", stack.WithDescription("live channel"))
//	channel := &mediapackage.Channel{Id: "live"}
//	ref := stk.Add("LiveChannel", channel)
//	stk.Add("HlsEndpoint", &mediapackage.OriginEndpoint{Id: "live-hls", ChannelId: ref})
//	stk.AddOutput("ChannelArn", stack.Output{Value: channel.Arn})
//	data, err := stk.SynthJSON()
package stack

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
	"github.com/lex00/wetwire-l1-go/intrinsics"
)

type (
	// Output is a template output.
	Output = wetwire.Output
	// Export names an output for cross-stack Fn::ImportValue.
	Export = wetwire.Export
)

// Stack is a set of resources that synthesize into one template.
// A Stack is not safe for concurrent use.
type Stack struct {
	name    string
	builder *template.Builder
	// errs holds registration errors, reported by Synth.
	errs error
}

// Option configures a Stack.
type Option func(*Stack)

// WithDescription sets the template Description.
func WithDescription(description string) Option {
	return func(s *Stack) {
		s.builder.SetDescription(description)
	}
}

// New creates an empty stack.
func New(name string, opts ...Option) *Stack {
	s := &Stack{
		name:    name,
		builder: template.NewBuilder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stack name.
func (s *Stack) Name() string {
	return s.name
}

// ResourceOption sets a resource attribute outside Properties.
type ResourceOption func(*template.Entry)

// DependsOn adds explicit dependencies on other resources.
func DependsOn(logicalIDs ...string) ResourceOption {
	return func(e *template.Entry) {
		e.DependsOn = append(e.DependsOn, logicalIDs...)
	}
}

// WithCondition creates the resource only when the named condition is true.
func WithCondition(name string) ResourceOption {
	return func(e *template.Entry) {
		e.Condition = name
	}
}

// DeletionPolicy sets the DeletionPolicy attribute (Delete, Retain, Snapshot).
func DeletionPolicy(policy string) ResourceOption {
	return func(e *template.Entry) {
		e.DeletionPolicy = policy
	}
}

// UpdateReplacePolicy sets the UpdateReplacePolicy attribute.
func UpdateReplacePolicy(policy string) ResourceOption {
	return func(e *template.Entry) {
		e.UpdateReplacePolicy = policy
	}
}

// WithMetadata sets the resource Metadata attribute.
func WithMetadata(metadata map[string]any) ResourceOption {
	return func(e *template.Entry) {
		e.Metadata = metadata
	}
}

// Add registers a resource under logicalID and returns a Ref to it.
// When resource is a pointer, its AttrRef fields (Arn, Url, ...) are bound
// to logicalID so they can be used as GetAtt values.
// Registration errors such as duplicate IDs are reported by Synth.
func (s *Stack) Add(logicalID string, resource wetwire.Resource, opts ...ResourceOption) intrinsics.Ref {
	entry := template.Entry{
		LogicalID: logicalID,
		Resource:  resource,
	}
	for _, opt := range opts {
		opt(&entry)
	}
	if err := s.builder.AddResource(entry); err != nil {
		s.errs = multierr.Append(s.errs, err)
	} else {
		bindAttrRefs(logicalID, resource)
	}
	return intrinsics.Ref{LogicalName: logicalID}
}

// Attr returns a GetAtt reference to an attribute of a resource.
func (s *Stack) Attr(logicalID, attribute string) wetwire.AttrRef {
	return wetwire.AttrRef{Resource: logicalID, Attribute: attribute}
}

// AddParameter registers a template parameter and returns it bound to name,
// ready to be used as a Ref value.
func (s *Stack) AddParameter(name string, p intrinsics.Parameter) intrinsics.Parameter {
	named := p.Named(name)
	if err := s.builder.AddParameter(name, named.ToDefinition()); err != nil {
		s.errs = multierr.Append(s.errs, err)
	}
	return named
}

// AddCondition registers a named condition and returns its name for use
// with WithCondition or Fn::If.
func (s *Stack) AddCondition(name string, expr any) string {
	if err := s.builder.AddCondition(name, expr); err != nil {
		s.errs = multierr.Append(s.errs, err)
	}
	return name
}

// AddMapping registers a mapping for use with Fn::FindInMap.
func (s *Stack) AddMapping(name string, m map[string]any) {
	if err := s.builder.AddMapping(name, m); err != nil {
		s.errs = multierr.Append(s.errs, err)
	}
}

// AddOutput registers a template output.
func (s *Stack) AddOutput(name string, o Output) {
	if err := s.builder.AddOutput(name, o); err != nil {
		s.errs = multierr.Append(s.errs, err)
	}
}

// Synth validates every resource and renders the template. Registration
// and validation errors are reported together.
func (s *Stack) Synth() (*wetwire.Template, error) {
	t, err := s.builder.Build()
	if err = multierr.Append(s.errs, err); err != nil {
		zap.L().Debug("synthesis failed", zap.String("stack", s.name), zap.Error(err))
		return nil, err
	}
	zap.L().Debug("synthesized stack",
		zap.String("stack", s.name),
		zap.Int("resources", len(t.Resources)),
		zap.Int("parameters", len(t.Parameters)),
		zap.Int("outputs", len(t.Outputs)),
	)
	return t, nil
}

// SynthJSON synthesizes the template as indented JSON.
func (s *Stack) SynthJSON() ([]byte, error) {
	t, err := s.Synth()
	if err != nil {
		return nil, err
	}
	return template.ToJSON(t)
}

// SynthYAML synthesizes the template as YAML.
func (s *Stack) SynthYAML() ([]byte, error) {
	t, err := s.Synth()
	if err != nil {
		return nil, err
	}
	return template.ToYAML(t)
}

// WriteFile synthesizes the template to path. Files ending in .yaml or .yml
// are written as YAML, everything else as JSON.
func (s *Stack) WriteFile(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = s.SynthYAML()
	default:
		data, err = s.SynthJSON()
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	zap.L().Info("wrote template", zap.String("stack", s.name), zap.String("path", path))
	return nil
}

var attrRefType = reflect.TypeOf(wetwire.AttrRef{})

// bindAttrRefs fills every AttrRef field of a pointer-to-struct resource.
func bindAttrRefs(logicalID string, resource any) {
	v := reflect.ValueOf(resource)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if field.Type != attrRefType || !v.Field(i).CanSet() {
			continue
		}
		v.Field(i).Set(reflect.ValueOf(wetwire.AttrRef{Resource: logicalID, Attribute: field.Name}))
	}
}
