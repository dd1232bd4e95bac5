package serialize

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/intrinsics"
	"github.com/lex00/wetwire-l1-go/resources"
	"github.com/lex00/wetwire-l1-go/resources/databrew"
	"github.com/lex00/wetwire-l1-go/resources/lambda"
	"github.com/lex00/wetwire-l1-go/resources/mediapackage"
)

func TestResource_OnlyRequiredProperties(t *testing.T) {
	schedule := databrew.Schedule{
		Name:           "nightly",
		CronExpression: "cron(0 2 * * ? *)",
	}

	props, err := Resource(schedule)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"Name":           "nightly",
		"CronExpression": "cron(0 2 * * ? *)",
	}, props)
}

func TestResource_RequiredKeysMatchRegistry(t *testing.T) {
	const role = "arn:aws:iam::123456789012:role/service"
	tests := []wetwire.Resource{
		databrew.Dataset{
			Name:  "orders",
			Input: databrew.Dataset_Input{S3InputDefinition: databrew.Dataset_S3Location{Bucket: "raw"}},
		},
		databrew.Job{Name: "nightly", RoleArn: role, Type_: "PROFILE"},
		databrew.Project{Name: "orders", DatasetName: "orders", RecipeName: "tidy", RoleArn: role},
		databrew.Recipe{
			Name:  "tidy",
			Steps: []any{databrew.Recipe_RecipeStep{Action: databrew.Recipe_Action{Operation: "UPPER_CASE"}}},
		},
		databrew.Ruleset{
			Name:      "quality",
			TargetArn: "arn:aws:databrew:us-east-1:123456789012:dataset/orders",
			Rules:     []any{databrew.Ruleset_Rule{Name: "not-null", CheckExpression: ":col IS NOT NULL"}},
		},
		databrew.Schedule{Name: "nightly", CronExpression: "cron(0 2 * * ? *)"},
		lambda.LayerVersion{Content: lambda.LayerVersion_Content{S3Bucket: "assets", S3Key: "layer.zip"}},
		mediapackage.Asset{Id: "clip", PackagingGroupId: "vod", SourceArn: "arn:aws:s3:::media/clip.smil", SourceRoleArn: role},
		mediapackage.Channel{Id: "live"},
		mediapackage.OriginEndpoint{Id: "live-hls", ChannelId: "live"},
		mediapackage.PackagingConfiguration{Id: "hls", PackagingGroupId: "vod"},
		mediapackage.PackagingGroup{Id: "vod"},
	}
	require.Len(t, tests, len(resources.Schemas))

	for _, res := range tests {
		t.Run(res.ResourceType(), func(t *testing.T) {
			schema, ok := resources.Lookup(res.ResourceType())
			require.True(t, ok)
			require.NoError(t, Validate(res))

			props, err := Resource(res)
			require.NoError(t, err)

			keys := make([]string, 0, len(props))
			for k := range props {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			want := append([]string(nil), schema.Required...)
			sort.Strings(want)
			assert.Equal(t, want, keys)
		})
	}
}

func TestResource_NestedPropertyType(t *testing.T) {
	dataset := databrew.Dataset{
		Name: "orders",
		Input: databrew.Dataset_Input{
			S3InputDefinition: databrew.Dataset_S3Location{
				Bucket: "raw-orders",
				Key:    "2024/",
			},
		},
	}

	props, err := Resource(dataset)
	require.NoError(t, err)

	input := props["Input"].(map[string]any)
	s3 := input["S3InputDefinition"].(map[string]any)
	assert.Equal(t, "raw-orders", s3["Bucket"])
	assert.Equal(t, "2024/", s3["Key"])
	assert.NotContains(t, s3, "BucketOwner")
	assert.NotContains(t, input, "Metadata")
}

func TestResource_LowerCamelPropertyName(t *testing.T) {
	channel := mediapackage.Channel{
		Id: "live",
		HlsIngest: mediapackage.Channel_HlsIngest{
			IngestEndpoints: []any{
				mediapackage.Channel_IngestEndpoint{Id: "ep1", Username: "u", Password: "p", Url: "https://ingest"},
			},
		},
	}

	props, err := Resource(channel)
	require.NoError(t, err)

	hls := props["HlsIngest"].(map[string]any)
	require.Contains(t, hls, "ingestEndpoints")
	endpoints := hls["ingestEndpoints"].([]any)
	assert.Len(t, endpoints, 1)
}

func TestResource_Intrinsics(t *testing.T) {
	job := databrew.Job{
		Name:    intrinsics.Sub{String: "${AWS::StackName}-profile"},
		RoleArn: wetwire.AttrRef{Resource: "JobRole", Attribute: "Arn"},
		Type_:   "PROFILE",
	}

	props, err := Resource(job)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Fn::Sub": "${AWS::StackName}-profile"}, props["Name"])
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"JobRole", "Arn"}}, props["RoleArn"])
	assert.Equal(t, "PROFILE", props["Type"])
	assert.NotContains(t, props, "Type_")
}

func TestResource_ExplicitFalseIsKept(t *testing.T) {
	rule := databrew.Ruleset_Rule{
		Name:            "no-nulls",
		CheckExpression: "AGG(MISSING_VALUES_PERCENTAGE) == :val1",
		Disabled:        false,
	}

	props, err := Resource(rule)
	require.NoError(t, err)
	assert.Equal(t, false, props["Disabled"])
}

func TestResource_AttrRefFieldsExcluded(t *testing.T) {
	endpoint := mediapackage.OriginEndpoint{
		Id:        "hls",
		ChannelId: "live",
		Arn:       wetwire.AttrRef{Resource: "Hls", Attribute: "Arn"},
	}

	props, err := Resource(&endpoint)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Id": "hls", "ChannelId": "live"}, props)
}

func TestResource_NotAStruct(t *testing.T) {
	_, err := Resource("bucket")
	assert.Error(t, err)
}

func TestValue(t *testing.T) {
	v, err := Value(intrinsics.Ref{LogicalName: "VodGroup"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Ref": "VodGroup"}, v)

	v, err = Value([]any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", int64(1)}, v)
}

func TestValidate_Nested(t *testing.T) {
	dataset := databrew.Dataset{
		Name: "orders",
		Input: databrew.Dataset_Input{
			S3InputDefinition: databrew.Dataset_S3Location{Key: "2024/"},
		},
	}

	err := Validate(dataset)
	require.Error(t, err)
	assert.EqualError(t, err, "Input.S3InputDefinition: AWS::DataBrew::Dataset.S3Location: Required property 'Bucket' is missing")
	assert.Equal(t, []string{"Bucket"}, wetwire.MissingProperties(err))

	var rpe *wetwire.RequiredPropertyError
	assert.True(t, errors.As(err, &rpe))
}

func TestValidate_ListElements(t *testing.T) {
	recipe := databrew.Recipe{
		Name: "clean",
		Steps: []any{
			databrew.Recipe_RecipeStep{Action: databrew.Recipe_Action{Operation: "UPPER_CASE"}},
			databrew.Recipe_RecipeStep{Action: databrew.Recipe_Action{}},
		},
	}

	err := Validate(&recipe)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Steps[1].Action: AWS::DataBrew::Recipe.Action: Required property 'Operation' is missing")
}

func TestValidate_AllMissingReported(t *testing.T) {
	err := Validate(databrew.Project{})
	require.Error(t, err)
	assert.Equal(t, []string{"DatasetName", "Name", "RecipeName", "RoleArn"}, wetwire.MissingProperties(err))
}

func TestValidate_IntrinsicsAreOpaque(t *testing.T) {
	dataset := databrew.Dataset{
		Name:  "orders",
		Input: intrinsics.If{Condition: "UseCatalog", ValueIfTrue: map[string]any{}, ValueIfFalse: map[string]any{}},
	}
	assert.NoError(t, Validate(dataset))
}
