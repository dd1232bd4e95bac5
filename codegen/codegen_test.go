package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lex00/cloudformation-schema-go/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSpec = `{
  "ResourceSpecificationVersion": "1.0.0",
  "ResourceTypes": {
    "AWS::DataBrew::Schedule": {
      "Documentation": "http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-databrew-schedule.html",
      "Properties": {
        "Name": {"PrimitiveType": "String", "Required": true},
        "CronExpression": {"PrimitiveType": "String", "Required": true},
        "JobNames": {"Type": "List", "PrimitiveItemType": "String", "Required": false},
        "Tags": {"Type": "List", "ItemType": "Tag", "Required": false}
      }
    },
    "AWS::DataBrew::Dataset": {
      "Properties": {
        "Name": {"PrimitiveType": "String", "Required": true},
        "Input": {"Type": "Input", "Required": true},
        "Format": {"PrimitiveType": "String", "Required": false}
      }
    },
    "AWS::MediaPackage::Channel": {
      "Attributes": {"Arn": {"PrimitiveType": "String"}},
      "Properties": {
        "Id": {"PrimitiveType": "String", "Required": true},
        "HlsIngest": {"Type": "HlsIngest", "Required": false}
      }
    },
    "AWS::S3::Bucket": {
      "Properties": {"BucketName": {"PrimitiveType": "String", "Required": false}}
    },
    "AWS::Lambda::LayerVersion": {
      "Properties": {"Content": {"Type": "Content", "Required": true}}
    },
    "AWS::Lambda::Function": {
      "Properties": {"Role": {"PrimitiveType": "String", "Required": true}}
    }
  },
  "PropertyTypes": {
    "AWS::DataBrew::Dataset.Input": {
      "Properties": {"S3InputDefinition": {"Type": "S3Location", "Required": false}}
    },
    "AWS::DataBrew::Dataset.S3Location": {
      "Properties": {
        "Bucket": {"PrimitiveType": "String", "Required": true},
        "Key": {"PrimitiveType": "String", "Required": false}
      }
    },
    "AWS::MediaPackage::Channel.HlsIngest": {
      "Properties": {"ingestEndpoints": {"Type": "List", "ItemType": "IngestEndpoint", "Required": false}}
    },
    "AWS::MediaPackage::Channel.IngestEndpoint": {
      "Properties": {"Id": {"PrimitiveType": "String", "Required": true}}
    },
    "AWS::Lambda::LayerVersion.Content": {
      "Properties": {"S3Bucket": {"PrimitiveType": "String", "Required": true}}
    }
  }
}`

func loadTestSpec(t *testing.T) *spec.Spec {
	t.Helper()
	var s spec.Spec
	require.NoError(t, json.Unmarshal([]byte(testSpec), &s))
	return &s
}

func findService(services []*Service, name string) *Service {
	for _, svc := range services {
		if svc.Name == name {
			return svc
		}
	}
	return nil
}

func TestParseSpec_Selection(t *testing.T) {
	services := parseSpec(loadTestSpec(t), defaultSelection)

	require.Len(t, services, 3)
	assert.Equal(t, "databrew", services[0].Name)
	assert.Equal(t, "lambda", services[1].Name)
	assert.Equal(t, "mediapackage", services[2].Name)

	lambda := findService(services, "lambda")
	assert.Contains(t, lambda.Resources, "LayerVersion")
	assert.NotContains(t, lambda.Resources, "Function")
	assert.Nil(t, findService(services, "s3"))
}

func TestParseSpec_Properties(t *testing.T) {
	services := parseSpec(loadTestSpec(t), defaultSelection)
	databrew := findService(services, "databrew")
	require.NotNil(t, databrew)

	schedule := databrew.Resources["Schedule"]
	assert.Equal(t, "AWS::DataBrew::Schedule", schedule.CFType)
	assert.True(t, schedule.Properties["Name"].Required)
	assert.Equal(t, "any", schedule.Properties["Name"].GoType)
	assert.Equal(t, "[]any", schedule.Properties["JobNames"].GoType)
	assert.Empty(t, schedule.Properties["Tags"].ItemType)

	dataset := databrew.Resources["Dataset"]
	assert.Equal(t, "any", dataset.Properties["Input"].GoType)
	assert.Equal(t, "Input", dataset.Properties["Input"].ItemType)

	require.Contains(t, databrew.PropertyTypes, "Dataset_S3Location")
	assert.Equal(t, "Dataset", databrew.PropertyTypes["Dataset_S3Location"].ParentResource)
}

func TestParseSpec_LowerCamelProperty(t *testing.T) {
	services := parseSpec(loadTestSpec(t), defaultSelection)
	mp := findService(services, "mediapackage")
	require.NotNil(t, mp)

	prop := mp.PropertyTypes["Channel_HlsIngest"].Properties["ingestEndpoints"]
	assert.Equal(t, "ingestEndpoints", prop.Name)
	assert.Equal(t, "IngestEndpoints", prop.GoName)
	assert.True(t, prop.IsList)
}

func TestGoFieldName(t *testing.T) {
	tests := map[string]string{
		"Name":            "Name",
		"Type":            "Type_",
		"ingestEndpoints": "IngestEndpoints",
		"S3Key":           "S3Key",
	}
	for in, want := range tests {
		assert.Equal(t, want, goFieldName(in), in)
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "origin_endpoint", toSnakeCase("OriginEndpoint"))
	assert.Equal(t, "packaging_configuration", toSnakeCase("PackagingConfiguration"))
	assert.Equal(t, "job", toSnakeCase("Job"))
}

func TestSelectionFor(t *testing.T) {
	sel, err := selectionFor("")
	require.NoError(t, err)
	assert.Equal(t, defaultSelection, sel)

	sel, err = selectionFor("DataBrew, mediapackage")
	require.NoError(t, err)
	assert.Len(t, sel, 2)
	assert.Contains(t, sel, "databrew")

	_, err = selectionFor("s3")
	assert.Error(t, err)
}

func TestGenerateCode(t *testing.T) {
	dir := t.TempDir()
	services := parseSpec(loadTestSpec(t), defaultSelection)

	stats, err := generateCode(services, dir, false)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Services)
	assert.Equal(t, 4, stats.Resources)

	src, err := os.ReadFile(filepath.Join(dir, "resources", "databrew", "schedule.go"))
	require.NoError(t, err)
	code := string(src)
	assert.True(t, strings.HasPrefix(code, "// Code generated by wetwire-l1 codegen. DO NOT EDIT."))
	assert.Contains(t, code, "type Schedule struct")
	assert.Contains(t, code, "`json:\"CronExpression,omitempty\"`")
	assert.Contains(t, code, `func (r Schedule) ResourceType() string { return "AWS::DataBrew::Schedule" }`)
	assert.Contains(t, code, `wetwire.Required("CronExpression", r.CronExpression)`)

	channel, err := os.ReadFile(filepath.Join(dir, "resources", "mediapackage", "channel.go"))
	require.NoError(t, err)
	assert.Contains(t, string(channel), "wetwire.AttrRef `json:\"-\"`")

	types, err := os.ReadFile(filepath.Join(dir, "resources", "databrew", "dataset_types.go"))
	require.NoError(t, err)
	assert.Contains(t, string(types), "type Dataset_S3Location struct")
	assert.Contains(t, string(types), `"AWS::DataBrew::Dataset.S3Location"`)

	_, err = os.Stat(filepath.Join(dir, "resources", "databrew", "schedule_types.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCode_DryRun(t *testing.T) {
	dir := t.TempDir()
	services := parseSpec(loadTestSpec(t), defaultSelection)

	stats, err := generateCode(services, dir, true)
	require.NoError(t, err)
	assert.Zero(t, stats.FilesWritten)

	_, err = os.Stat(filepath.Join(dir, "resources"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateRegistry(t *testing.T) {
	dir := t.TempDir()
	services := parseSpec(loadTestSpec(t), defaultSelection)

	require.NoError(t, generateRegistry(services, dir, false))

	src, err := os.ReadFile(filepath.Join(dir, "resources", "registry.go"))
	require.NoError(t, err)
	code := string(src)
	assert.Contains(t, code, `"AWS::DataBrew::Dataset": {`)
	assert.Contains(t, code, `Required:   []string{"Input", "Name"},`)
	assert.Contains(t, code, `"databrew.Dataset.Input":`)
	assert.Contains(t, code, `"Dataset_Input"`)
	assert.Contains(t, code, `"mediapackage.Channel_HlsIngest.ingestEndpoints":`)
	assert.NotContains(t, code, "AWS::S3::Bucket")
}
