package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wetwire "github.com/lex00/wetwire-l1-go"
)

func messages(errs []wetwire.SchemaError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func TestValidateTemplate_Valid(t *testing.T) {
	tmpl := &wetwire.Template{
		Parameters: map[string]wetwire.Parameter{"Env": {Type: "String"}},
		Resources: map[string]wetwire.ResourceDef{
			"LiveChannel": {Type: "AWS::MediaPackage::Channel", Properties: map[string]any{
				"Id": map[string]any{"Fn::Sub": "${Env}-live"},
			}},
			"HlsEndpoint": {Type: "AWS::MediaPackage::OriginEndpoint", Properties: map[string]any{
				"Id":         "live-hls",
				"ChannelId":  map[string]any{"Ref": "LiveChannel"},
				"HlsPackage": map[string]any{"SegmentDurationSeconds": 6.0},
			}},
		},
		Outputs: map[string]wetwire.Output{
			"Url": {Value: map[string]any{"Fn::GetAtt": []any{"HlsEndpoint", "Url"}}},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.NoError(t, result.Err())
}

func TestValidateTemplate_RequiredProperties(t *testing.T) {
	tmpl := &wetwire.Template{
		Resources: map[string]wetwire.ResourceDef{
			"Cleanup": {Type: "AWS::DataBrew::Job", Properties: map[string]any{"Name": "cleanup"}},
			"Orders": {Type: "AWS::DataBrew::Dataset", Properties: map[string]any{
				"Name": "orders",
				"Input": map[string]any{
					"S3InputDefinition": map[string]any{"Key": "orders/"},
				},
			}},
			"Tidy": {Type: "AWS::DataBrew::Recipe", Properties: map[string]any{
				"Name":  "tidy",
				"Steps": []any{map[string]any{"Action": map[string]any{"Parameters": map[string]any{"x": "y"}}}},
			}},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Cleanup: Required property 'RoleArn' is missing",
		"Cleanup: Required property 'Type' is missing",
		"Orders.Input.S3InputDefinition: Required property 'Bucket' is missing",
		"Tidy.Steps[0].Action: Required property 'Operation' is missing",
	}, messages(result.Errors))
	assert.Error(t, result.Err())
}

func TestValidateTemplate_EmptyRequiredList(t *testing.T) {
	tmpl := &wetwire.Template{
		Resources: map[string]wetwire.ResourceDef{
			"Tidy": {Type: "AWS::DataBrew::Recipe", Properties: map[string]any{
				"Name":  "tidy",
				"Steps": []any{},
			}},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Tidy: Required property 'Steps' is missing"}, messages(result.Errors))
}

func TestValidateTemplate_UnknownProperty(t *testing.T) {
	tmpl := &wetwire.Template{
		Resources: map[string]wetwire.ResourceDef{
			"VodGroup": {Type: "AWS::MediaPackage::PackagingGroup", Properties: map[string]any{
				"Id":     "vod",
				"Bogus":  true,
				"Egress": map[string]any{"LogGroupName": "x"},
			}},
		},
	}

	lenient := ValidateTemplate(tmpl, Options{})
	assert.True(t, lenient.Valid)
	assert.Equal(t, []string{"VodGroup.Bogus: unknown property", "VodGroup.Egress: unknown property"}, messages(lenient.Warnings))

	strict := ValidateTemplate(tmpl, Options{Strict: true})
	assert.False(t, strict.Valid)
	assert.Len(t, strict.Errors, 2)
}

func TestValidateTemplate_UnknownType(t *testing.T) {
	tmpl := &wetwire.Template{
		Resources: map[string]wetwire.ResourceDef{
			"Bucket": {Type: "AWS::S3::Bucket"},
			"Broken": {Type: "NotAType"},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.Equal(t, []string{`Broken.Type: invalid resource type format: "NotAType"`}, messages(result.Errors))
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Bucket", result.Warnings[0].Resource)
}

func TestValidateTemplate_References(t *testing.T) {
	tmpl := &wetwire.Template{
		Parameters: map[string]wetwire.Parameter{"Env": {Type: "String"}},
		Resources: map[string]wetwire.ResourceDef{
			"Live": {
				Type:      "AWS::MediaPackage::Channel",
				DependsOn: []string{"Ghost"},
				Condition: "IsProd",
				Properties: map[string]any{
					"Id":          map[string]any{"Ref": "Missing"},
					"Description": map[string]any{"Fn::GetAtt": []any{"Env", "Value"}},
				},
			},
			"Endpoint": {Type: "AWS::MediaPackage::OriginEndpoint", Properties: map[string]any{
				"Id":        "e",
				"ChannelId": map[string]any{"Fn::GetAtt": []any{"Live", "DomainName"}},
			}},
		},
	}

	result := ValidateTemplate(tmpl, Options{})
	assert.Equal(t, []string{
		`Endpoint: Fn::GetAtt attribute "DomainName" is not defined for AWS::MediaPackage::Channel`,
		`Live.DependsOn: DependsOn target "Ghost" is not a resource`,
		`Live.Condition: unknown condition "IsProd"`,
		`Live: Fn::GetAtt target "Env" is a parameter, not a resource`,
		`Live: unknown Ref target "Missing"`,
	}, messages(result.Errors))
}

func TestIsValidResourceType(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"AWS::DataBrew::Job", true},
		{"Custom::Thing", true},
		{"Custom::", false},
		{"AWS::DataBrew", false},
		{"Foo::Bar::Baz", false},
		{"AWS::::Job", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isValidResourceType(tt.in), tt.in)
	}
}
