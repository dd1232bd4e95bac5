// Package intrinsics provides CloudFormation intrinsic functions for use as
// property values.
//
// The intrinsic types are re-exported from cloudformation-schema-go:
//
//	Ref{LogicalName: "MyChannel"}       → {"Ref": "MyChannel"}
//	Sub{String: "${AWS::StackName}-vod"} → {"Fn::Sub": "${AWS::StackName}-vod"}
//	Join{Delimiter: ",", Values: []any{"a", "b"}}
//
// Pseudo-parameters:
//
//	AWS_REGION, AWS_ACCOUNT_ID, AWS_STACK_NAME, etc.
package intrinsics

import (
	"encoding/json"

	"github.com/lex00/cloudformation-schema-go/intrinsics"

	wetwire "github.com/lex00/wetwire-l1-go"
)

type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// SubWithMap is Fn::Sub with a variable map.
	SubWithMap = intrinsics.SubWithMap

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Select represents a CloudFormation Fn::Select intrinsic function.
	Select = intrinsics.Select

	// GetAZs represents a CloudFormation Fn::GetAZs intrinsic function.
	GetAZs = intrinsics.GetAZs

	If     = intrinsics.If
	Equals = intrinsics.Equals
	And    = intrinsics.And
	Or     = intrinsics.Or
	Not    = intrinsics.Not

	// Base64 represents a CloudFormation Fn::Base64 intrinsic function.
	Base64 = intrinsics.Base64

	// ImportValue reads an export of another stack.
	ImportValue = intrinsics.ImportValue

	// FindInMap represents a CloudFormation Fn::FindInMap intrinsic function.
	FindInMap = intrinsics.FindInMap

	// Split represents a CloudFormation Fn::Split intrinsic function.
	Split = intrinsics.Split

	// Condition represents a CloudFormation Condition reference.
	Condition = intrinsics.Condition

	// Tag is a Key/Value resource tag. DataBrew and MediaPackage resources
	// take Tags as a list of these.
	Tag = intrinsics.Tag
)

// Pseudo-parameters, each a Ref to an AWS:: name.
var (
	AWS_ACCOUNT_ID        = intrinsics.AWS_ACCOUNT_ID
	AWS_NOTIFICATION_ARNS = intrinsics.AWS_NOTIFICATION_ARNS
	AWS_NO_VALUE          = intrinsics.AWS_NO_VALUE
	AWS_PARTITION         = intrinsics.AWS_PARTITION
	AWS_REGION            = intrinsics.AWS_REGION
	AWS_STACK_ID          = intrinsics.AWS_STACK_ID
	AWS_STACK_NAME        = intrinsics.AWS_STACK_NAME
	AWS_URL_SUFFIX        = intrinsics.AWS_URL_SUFFIX
)

// Parameter defines a CloudFormation template parameter.
// Once registered with stack.AddParameter it serializes to {"Ref": "Name"}
// wherever it is used as a property value.
//
// Example:
//
//	var SourceBucket = stk.AddParameter("SourceBucket", Parameter{
//	    Type:        "String",
//	    Description: "Bucket holding raw datasets",
//	})
//
//	var Raw = databrew.Dataset_S3Location{Bucket: SourceBucket}
type Parameter struct {
	Type                  string
	Description           string
	Default               any
	AllowedValues         []any
	AllowedPattern        string
	ConstraintDescription string
	MinLength             *int
	MaxLength             *int
	MinValue              *float64
	MaxValue              *float64
	NoEcho                bool

	name string
}

// Named returns a copy of the parameter bound to the given logical name.
func (p Parameter) Named(name string) Parameter {
	p.name = name
	return p
}

// Name returns the parameter name.
func (p Parameter) Name() string {
	return p.name
}

// MarshalJSON serializes Parameter as a CloudFormation Ref when used as a value.
func (p Parameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"Ref": p.name})
}

// ToDefinition returns the parameter as it appears in the Parameters section.
func (p Parameter) ToDefinition() wetwire.Parameter {
	typ := p.Type
	if typ == "" {
		typ = "String"
	}
	return wetwire.Parameter{
		Type:                  typ,
		Description:           p.Description,
		Default:               p.Default,
		AllowedValues:         p.AllowedValues,
		AllowedPattern:        p.AllowedPattern,
		ConstraintDescription: p.ConstraintDescription,
		MinLength:             p.MinLength,
		MaxLength:             p.MaxLength,
		MinValue:              p.MinValue,
		MaxValue:              p.MaxValue,
		NoEcho:                p.NoEcho,
	}
}

// Json is a shorthand for map[string]any, used for free-form map properties
// such as StatisticOverride.Parameters.
type Json = map[string]any

// Any creates a []any slice from the given items.
//
//	Tags: Any(Tag{Key: "team", Value: "media"}),
func Any(items ...any) []any {
	return items
}

// IntPtr returns a pointer to the given int value.
func IntPtr(i int) *int {
	return &i
}

// Float64Ptr returns a pointer to the given float64 value.
func Float64Ptr(f float64) *float64 {
	return &f
}
