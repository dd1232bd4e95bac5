// Package wetwire_l1 provides Go types for the AWS::DataBrew and
// AWS::MediaPackage CloudFormation resources.
//
// Resources are plain struct literals, one field per CloudFormation property:
//
//	var Cleanup = databrew.Job{
//	    Name:    "nightly-cleanup",
//	    RoleArn: JobRole,
//	    Type_:   "RECIPE",
//	}
//
//	var Live = mediapackage.Channel{
//	    Id: "live",
//	}
//
// Resources are added to a stack.Stack, which validates required properties
// and renders the CloudFormation template.
package wetwire_l1

import (
	"encoding/json"
)

// Resource represents a CloudFormation resource.
// All generated resource types (databrew.Job, mediapackage.Channel, etc.) implement this interface.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::DataBrew::Job")
	ResourceType() string
}

// Validator is implemented by resources and property types that have
// required properties.
type Validator interface {
	Validate() error
}

// AttrRef represents a GetAtt reference to a resource attribute.
// Generated resource types have AttrRef fields for each supported attribute.
//
// Example:
//
//	group := &mediapackage.PackagingGroup{Id: "vod"}
//	stk.Add("VodGroup", group)
//	out := stack.Output{Value: group.DomainName}
//
// When serialized to CloudFormation JSON, AttrRef becomes:
//
//	{"Fn::GetAtt": ["VodGroup", "DomainName"]}
type AttrRef struct {
	// Resource is the logical name of the referenced resource
	Resource string
	// Attribute is the attribute name (e.g., "Arn", "DomainName")
	Attribute string
}

// MarshalJSON serializes AttrRef to CloudFormation GetAtt syntax.
func (a AttrRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]string{
		"Fn::GetAtt": {a.Resource, a.Attribute},
	})
}

// IsZero returns true if the AttrRef has not been populated.
func (a AttrRef) IsZero() bool {
	return a.Resource == "" && a.Attribute == ""
}

// Template represents a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Mappings                 map[string]any         `json:"Mappings,omitempty" yaml:"Mappings,omitempty"`
	Conditions               map[string]any         `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type                string         `json:"Type" yaml:"Type"`
	Properties          map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn           []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	Condition           string         `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	DeletionPolicy      string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
	UpdateReplacePolicy string         `json:"UpdateReplacePolicy,omitempty" yaml:"UpdateReplacePolicy,omitempty"`
	Metadata            map[string]any `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type                  string   `json:"Type" yaml:"Type"`
	Description           string   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default               any      `json:"Default,omitempty" yaml:"Default,omitempty"`
	AllowedValues         []any    `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
	AllowedPattern        string   `json:"AllowedPattern,omitempty" yaml:"AllowedPattern,omitempty"`
	ConstraintDescription string   `json:"ConstraintDescription,omitempty" yaml:"ConstraintDescription,omitempty"`
	MinLength             *int     `json:"MinLength,omitempty" yaml:"MinLength,omitempty"`
	MaxLength             *int     `json:"MaxLength,omitempty" yaml:"MaxLength,omitempty"`
	MinValue              *float64 `json:"MinValue,omitempty" yaml:"MinValue,omitempty"`
	MaxValue              *float64 `json:"MaxValue,omitempty" yaml:"MaxValue,omitempty"`
	NoEcho                bool     `json:"NoEcho,omitempty" yaml:"NoEcho,omitempty"`
}

// Output is a CloudFormation template output.
type Output struct {
	Description string  `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any     `json:"Value" yaml:"Value"`
	Condition   string  `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	Export      *Export `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// Export names a stack output for cross-stack Fn::ImportValue.
type Export struct {
	Name any `json:"Name" yaml:"Name"`
}

// ValidateResult is the JSON output from `wetwire-l1 validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// SchemaError is a single schema violation found in a template.
type SchemaError struct {
	Resource string `json:"resource"`
	Property string `json:"property,omitempty"`
	Message  string `json:"message"`
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	if e.Property == "" {
		return e.Resource + ": " + e.Message
	}
	return e.Resource + "." + e.Property + ": " + e.Message
}

// LintResult is the JSON output from `wetwire-l1 lint`.
type LintResult struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Info     []string `json:"info,omitempty"`
}

// ListResult is the JSON output from `wetwire-l1 list`.
type ListResult struct {
	Resources []ListResource `json:"resources"`
}

// ListResource is a single supported resource type in the list output.
type ListResource struct {
	Type       string   `json:"type"`
	GoType     string   `json:"go_type"`
	Required   []string `json:"required,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
}

// DiffEntry describes one added, removed or modified resource.
type DiffEntry struct {
	Resource string   `json:"resource"`
	Type     string   `json:"type"`
	Changes  []string `json:"changes,omitempty"`
}

// TemplateDiff groups the differences between two templates.
type TemplateDiff struct {
	Added    []DiffEntry `json:"added,omitempty"`
	Removed  []DiffEntry `json:"removed,omitempty"`
	Modified []DiffEntry `json:"modified,omitempty"`
}

// DiffSummary counts differences.
type DiffSummary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
	Total    int `json:"total"`
}

// DiffResult is the JSON output from `wetwire-l1 diff`.
type DiffResult struct {
	Success bool         `json:"success"`
	Diff    TemplateDiff `json:"diff"`
	Summary DiffSummary  `json:"summary"`
}

// LayerResult is the JSON output from `wetwire-l1 layer` subcommands.
type LayerResult struct {
	Path    string   `json:"path,omitempty"`
	Hash    string   `json:"hash,omitempty"`
	Bucket  string   `json:"bucket,omitempty"`
	Key     string   `json:"key,omitempty"`
	Entries []string `json:"entries,omitempty"`
	Skipped bool     `json:"skipped,omitempty"`
}
