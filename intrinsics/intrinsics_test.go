package intrinsics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Ref{LogicalName: "LiveChannel"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ref": "LiveChannel"}`, string(data))
}

func TestGetAtt_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(GetAtt{LogicalName: "HlsEndpoint", Attribute: "Url"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAtt": ["HlsEndpoint", "Url"]}`, string(data))
}

func TestSub_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Sub{String: "${AWS::StackName}-vod"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Sub": "${AWS::StackName}-vod"}`, string(data))
}

func TestJoin_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Join{Delimiter: "/", Values: []any{"s3:", "", "bucket"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Join": ["/", ["s3:", "", "bucket"]]}`, string(data))
}

func TestIf_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(If{Condition: "IsProd", ValueIfTrue: 5, ValueIfFalse: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::If": ["IsProd", 5, 1]}`, string(data))
}

func TestPseudoParameters(t *testing.T) {
	tests := []struct {
		name     string
		param    Ref
		expected string
	}{
		{"AWS_REGION", AWS_REGION, `{"Ref": "AWS::Region"}`},
		{"AWS_ACCOUNT_ID", AWS_ACCOUNT_ID, `{"Ref": "AWS::AccountId"}`},
		{"AWS_STACK_NAME", AWS_STACK_NAME, `{"Ref": "AWS::StackName"}`},
		{"AWS_PARTITION", AWS_PARTITION, `{"Ref": "AWS::Partition"}`},
		{"AWS_NO_VALUE", AWS_NO_VALUE, `{"Ref": "AWS::NoValue"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.param)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestParameter_Named(t *testing.T) {
	p := Parameter{Type: "String", Description: "Role used by DataBrew jobs"}
	assert.Equal(t, "", p.Name())

	named := p.Named("JobRoleArn")
	assert.Equal(t, "JobRoleArn", named.Name())
	assert.Equal(t, "", p.Name(), "original must be unchanged")

	data, err := json.Marshal(named)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ref": "JobRoleArn"}`, string(data))
}

func TestParameter_ToDefinition(t *testing.T) {
	def := Parameter{
		Description:   "Segment length",
		Default:       6,
		AllowedValues: []any{2, 6, 10},
		MinValue:      Float64Ptr(1),
	}.ToDefinition()

	assert.Equal(t, "String", def.Type, "type defaults to String")
	assert.Equal(t, "Segment length", def.Description)
	assert.Equal(t, 6, def.Default)
	assert.Equal(t, []any{2, 6, 10}, def.AllowedValues)
	require.NotNil(t, def.MinValue)
	assert.Equal(t, 1.0, *def.MinValue)
	assert.Nil(t, def.MaxLength)
}

func TestAny(t *testing.T) {
	tags := Any(Tag{Key: "team", Value: "media"}, Tag{Key: "env", Value: "prod"})
	assert.Len(t, tags, 2)
}
