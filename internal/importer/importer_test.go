package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/internal/template"
)

const mediaTemplate = `AWSTemplateFormatVersion: "2010-09-09"
Description: Live and on-demand video
Parameters:
  Env:
    Type: String
    AllowedValues: [dev, prod]
    Default: dev
  Retries:
    Type: Number
    Default: 3
Mappings:
  Segments:
    dev:
      Seconds: 2
Conditions:
  IsProd: !Equals [!Ref Env, prod]
Resources:
  LiveChannel:
    Type: AWS::MediaPackage::Channel
    Properties:
      Id: !Sub "${Env}-live"
      Tags:
        - Key: team
          Value: media
  LiveHls:
    Type: AWS::MediaPackage::OriginEndpoint
    Condition: IsProd
    Properties:
      Id: live-hls
      ChannelId: !Ref LiveChannel
      HlsPackage:
        SegmentDurationSeconds: 6
      Bogus: true
  Archive:
    Type: AWS::MediaPackage::PackagingGroup
    DependsOn: LiveChannel
    DeletionPolicy: Retain
    Properties:
      Id: !Sub "${AWS::StackName}-vod"
Outputs:
  PlaybackUrl:
    Value: !GetAtt LiveHls.Url
  Region:
    Value: !Ref AWS::Region
    Export:
      Name: !Sub "${AWS::StackName}-region"
`

func writeTemplate(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateFile(t *testing.T) {
	path := writeTemplate(t, "media.yaml", mediaTemplate)

	result, err := GenerateFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Resources)
	src := string(result.Source)

	assert.Contains(t, src, "// Package infra was generated by wetwire-l1 import from media.yaml.")
	assert.Contains(t, src, "package infra")
	assert.Contains(t, src, `. "github.com/lex00/wetwire-l1-go/intrinsics"`)
	assert.Contains(t, src, `"github.com/lex00/wetwire-l1-go/resources/mediapackage"`)
	assert.Contains(t, src, `"github.com/lex00/wetwire-l1-go/stack"`)
	assert.Contains(t, src, `stk := stack.New("media", stack.WithDescription("Live and on-demand video"))`)

	// Only referenced parameters get a variable.
	assert.Contains(t, src, `env := stk.AddParameter("Env", Parameter{`)
	assert.Contains(t, src, `stk.AddParameter("Retries", Parameter{`)
	assert.Regexp(t, `Type:\s+"Number"`, src)

	assert.Contains(t, src, `stk.AddMapping("Segments", Json{`)
	assert.Contains(t, src, `stk.AddCondition("IsProd", Equals{Value1: env, Value2: "prod"})`)

	assert.Contains(t, src, "liveChannel := &mediapackage.Channel{")
	assert.Regexp(t, `Id:\s+Sub\{String: "\$\{Env\}-live"\}`, src)
	assert.Contains(t, src, `Tag{Key: "team", Value: "media"}`)

	assert.Regexp(t, `ChannelId:\s+Ref\{LogicalName: "LiveChannel"\}`, src)
	assert.Regexp(t, `HlsPackage:\s+mediapackage.OriginEndpoint_HlsPackage\{`, src)
	assert.Contains(t, src, "SegmentDurationSeconds: 6")
	assert.NotContains(t, src, "Bogus")
	assert.Contains(t, src, `stk.Add("LiveHls", liveHls, stack.WithCondition("IsProd"))`)

	assert.Contains(t, src, `Id: Sub{String: "${AWS::StackName}-vod"}`)
	assert.Contains(t, src, `stk.Add("Archive", archive, stack.DependsOn("LiveChannel"), stack.DeletionPolicy("Retain"))`)

	assert.Contains(t, src, `stk.AddOutput("PlaybackUrl", stack.Output{Value: liveHls.Url})`)
	assert.Contains(t, src, `stk.AddOutput("Region", stack.Output{Value: AWS_REGION, Export: &stack.Export{Name: Sub{String: "${AWS::StackName}-region"}}})`)

	assert.Equal(t, []string{"LiveHls.Bogus: unknown property dropped"}, result.Warnings)
}

func TestGenerate_DependencyOrder(t *testing.T) {
	tmpl, err := template.Parse([]byte(mediaTemplate))
	require.NoError(t, err)

	result, err := Generate(tmpl, Options{Package: "media"})
	require.NoError(t, err)
	src := string(result.Source)

	channel := strings.Index(src, `stk.Add("LiveChannel"`)
	endpoint := strings.Index(src, "liveHls := &mediapackage.OriginEndpoint{")
	output := strings.Index(src, `stk.AddOutput("PlaybackUrl"`)
	assert.Less(t, channel, endpoint)
	assert.Less(t, endpoint, output)
	assert.Contains(t, src, `stk := stack.New("imported"`)
}

func TestGenerate_Deterministic(t *testing.T) {
	tmpl, err := template.Parse([]byte(mediaTemplate))
	require.NoError(t, err)

	first, err := Generate(tmpl, Options{})
	require.NoError(t, err)
	second, err := Generate(tmpl, Options{})
	require.NoError(t, err)
	assert.Equal(t, string(first.Source), string(second.Source))
}

func TestGenerate_DataBrew(t *testing.T) {
	tmpl, err := template.Parse([]byte(`
Parameters:
  JobList:
    Type: CommaDelimitedList
Resources:
  Tidy:
    Type: AWS::DataBrew::Recipe
    Properties:
      Name: tidy
      Steps:
        - Action:
            Operation: UPPER_CASE
            Parameters:
              sourceColumn: title
  Nightly:
    Type: AWS::DataBrew::Schedule
    Properties:
      Name: nightly
      CronExpression: cron(0 3 * * ? *)
      JobNames: !Ref JobList
`))
	require.NoError(t, err)

	result, err := Generate(tmpl, Options{})
	require.NoError(t, err)
	src := string(result.Source)

	assert.Contains(t, src, `"github.com/lex00/wetwire-l1-go/resources/databrew"`)
	assert.Contains(t, src, "databrew.Recipe_RecipeStep{")
	assert.Regexp(t, `Action:\s+databrew.Recipe_Action\{`, src)
	assert.Regexp(t, `Operation:\s+"UPPER_CASE"`, src)
	assert.Regexp(t, `Parameters:\s+Json\{`, src)
	assert.Contains(t, src, `"sourceColumn": "title"`)
	assert.Regexp(t, `JobNames:\s+\[\]any\{jobList\}`, src)
	assert.Equal(t, []string{"Nightly.JobNames: list value wrapped in a single-element list"}, result.Warnings)
}

func TestGenerate_UnsupportedType(t *testing.T) {
	tmpl, err := template.Parse([]byte(`
Resources:
  Bucket:
    Type: AWS::S3::Bucket
  Queue:
    Type: AWS::SQS::Queue
`))
	require.NoError(t, err)

	_, err = Generate(tmpl, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bucket: unsupported resource type AWS::S3::Bucket")
	assert.Contains(t, err.Error(), "Queue: unsupported resource type AWS::SQS::Queue")
}

func TestGenerate_Cycle(t *testing.T) {
	tmpl, err := template.Parse([]byte(`
Resources:
  A:
    Type: AWS::MediaPackage::PackagingGroup
    Properties:
      Id: !Ref B
  B:
    Type: AWS::MediaPackage::PackagingGroup
    Properties:
      Id: !Ref A
`))
	require.NoError(t, err)

	_, err = Generate(tmpl, Options{})
	assert.ErrorContains(t, err, "ordering resources")
}

func TestVarName(t *testing.T) {
	tests := map[string]string{
		"LiveHls":      "liveHls",
		"VPCEndpoint":  "vpcEndpoint",
		"S3Bucket":     "s3Bucket",
		"DNS":          "dns",
		"Type":         "typeRes",
		"9Lives":       "r9Lives",
		"Func":         "funcRes",
		"archive-logs": "archivelogs",
	}
	for in, want := range tests {
		assert.Equal(t, want, varName(in), in)
	}
}

func TestNewVar_AvoidsCollisions(t *testing.T) {
	g := newGenerator(&wetwire.Template{})
	assert.Equal(t, "stackRes", g.newVar("Stack"))
	assert.Equal(t, "anyRes", g.newVar("Any"))
	assert.Equal(t, "a1", g.newVar("A1"))
	assert.Equal(t, "a12", g.newVar("a1"))
}

func TestGoFieldName(t *testing.T) {
	assert.Equal(t, "IngestEndpoints", goFieldName("ingestEndpoints"))
	assert.Equal(t, "Type_", goFieldName("Type"))
	assert.Equal(t, "Id", goFieldName("Id"))
}
