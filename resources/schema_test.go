package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		cfType   string
		goType   string
		required []string
	}{
		{"AWS::DataBrew::Dataset", "databrew.Dataset", []string{"Input", "Name"}},
		{"AWS::DataBrew::Job", "databrew.Job", []string{"Name", "RoleArn", "Type"}},
		{"AWS::DataBrew::Project", "databrew.Project", []string{"DatasetName", "Name", "RecipeName", "RoleArn"}},
		{"AWS::DataBrew::Recipe", "databrew.Recipe", []string{"Name", "Steps"}},
		{"AWS::DataBrew::Ruleset", "databrew.Ruleset", []string{"Name", "Rules", "TargetArn"}},
		{"AWS::DataBrew::Schedule", "databrew.Schedule", []string{"CronExpression", "Name"}},
		{"AWS::MediaPackage::Asset", "mediapackage.Asset", []string{"Id", "PackagingGroupId", "SourceArn", "SourceRoleArn"}},
		{"AWS::MediaPackage::Channel", "mediapackage.Channel", []string{"Id"}},
		{"AWS::MediaPackage::OriginEndpoint", "mediapackage.OriginEndpoint", []string{"ChannelId", "Id"}},
		{"AWS::MediaPackage::PackagingConfiguration", "mediapackage.PackagingConfiguration", []string{"Id", "PackagingGroupId"}},
		{"AWS::MediaPackage::PackagingGroup", "mediapackage.PackagingGroup", []string{"Id"}},
		{"AWS::Lambda::LayerVersion", "lambda.LayerVersion", []string{"Content"}},
	}

	for _, tt := range tests {
		t.Run(tt.cfType, func(t *testing.T) {
			s, ok := Lookup(tt.cfType)
			require.True(t, ok)
			assert.Equal(t, tt.goType, s.GoType)
			assert.Equal(t, tt.required, s.Required)
			for _, r := range s.Required {
				assert.True(t, s.HasProperty(r), r)
			}
		})
	}

	_, ok := Lookup("AWS::S3::Bucket")
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	types := Types()
	assert.Len(t, types, 12)
	assert.Equal(t, "AWS::DataBrew::Dataset", types[0])
	assert.IsIncreasing(t, types)
}

func TestSchema_Attributes(t *testing.T) {
	group, _ := Lookup("AWS::MediaPackage::PackagingGroup")
	assert.True(t, group.HasAttribute("DomainName"))
	assert.True(t, group.HasAttribute("Arn"))
	assert.False(t, group.HasAttribute("Url"))

	endpoint, _ := Lookup("AWS::MediaPackage::OriginEndpoint")
	assert.Equal(t, []string{"Arn", "Url"}, endpoint.Attributes)
}

func TestNested(t *testing.T) {
	key, s, ok := Nested("AWS::DataBrew::Dataset", "Input")
	require.True(t, ok)
	assert.Equal(t, "databrew.Dataset_Input", key)
	assert.True(t, s.HasProperty("S3InputDefinition"))

	key, s, ok = Nested(key, "S3InputDefinition")
	require.True(t, ok)
	assert.Equal(t, "databrew.Dataset_S3Location", key)
	assert.Equal(t, []string{"Bucket"}, s.Required)

	key, _, ok = Nested("AWS::MediaPackage::Channel", "HlsIngest")
	require.True(t, ok)
	_, s, ok = Nested(key, "ingestEndpoints")
	require.True(t, ok)
	assert.Equal(t, []string{"Id", "Password", "Url", "Username"}, s.Required)

	_, _, ok = Nested("AWS::DataBrew::Dataset", "Name")
	assert.False(t, ok)
	_, _, ok = Nested("AWS::S3::Bucket", "Anything")
	assert.False(t, ok)
}

func TestPropertyTypes_SameNameDifferentShape(t *testing.T) {
	job := PropertyTypes["databrew.Job_S3Location"]
	recipe := PropertyTypes["databrew.Recipe_S3Location"]
	assert.True(t, job.HasProperty("BucketOwner"))
	assert.False(t, recipe.HasProperty("BucketOwner"))
}

func TestSchema_ContainerKinds(t *testing.T) {
	recipe, _ := Lookup("AWS::DataBrew::Recipe")
	assert.True(t, recipe.IsList("Steps"))
	assert.False(t, recipe.IsList("Name"))

	action := PropertyTypes["databrew.Recipe_Action"]
	assert.True(t, action.IsMap("Parameters"))
	assert.False(t, action.IsList("Parameters"))
}
