package databrew

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/intrinsics"
)

// TestResourceTypes verifies all 6 DataBrew resource types return correct CloudFormation types.
func TestResourceTypes(t *testing.T) {
	tests := []struct {
		name     string
		resource wetwire.Resource
		expected string
	}{
		{"Dataset", Dataset{}, "AWS::DataBrew::Dataset"},
		{"Job", Job{}, "AWS::DataBrew::Job"},
		{"Project", Project{}, "AWS::DataBrew::Project"},
		{"Recipe", Recipe{}, "AWS::DataBrew::Recipe"},
		{"Ruleset", Ruleset{}, "AWS::DataBrew::Ruleset"},
		{"Schedule", Schedule{}, "AWS::DataBrew::Schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resource.ResourceType())
		})
	}
}

func TestRequiredProperties(t *testing.T) {
	tests := []struct {
		name     string
		resource wetwire.Validator
		missing  []string
	}{
		{"Dataset", Dataset{}, []string{"Input", "Name"}},
		{"Job", Job{}, []string{"Name", "RoleArn", "Type"}},
		{"Project", Project{}, []string{"DatasetName", "Name", "RecipeName", "RoleArn"}},
		{"Recipe", Recipe{}, []string{"Name", "Steps"}},
		{"Ruleset", Ruleset{}, []string{"Name", "Rules", "TargetArn"}},
		{"Schedule", Schedule{}, []string{"CronExpression", "Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resource.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.missing, wetwire.MissingProperties(err))
		})
	}
}

func TestJob_MissingRoleArn(t *testing.T) {
	job := Job{Name: "nightly", Type_: "RECIPE"}
	assert.EqualError(t, job.Validate(), "AWS::DataBrew::Job: Required property 'RoleArn' is missing")
}

// TestJobSerialization checks that only the supplied properties are rendered.
func TestJobSerialization(t *testing.T) {
	job := Job{
		Name:        "nightly-profile",
		RoleArn:     intrinsics.Ref{LogicalName: "JobRoleArn"},
		Type_:       "PROFILE",
		DatasetName: "orders",
		OutputLocation: Job_OutputLocation{
			Bucket: "profiles",
		},
	}
	require.NoError(t, job.Validate())

	data, err := json.Marshal(job)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Name": "nightly-profile",
		"RoleArn": {"Ref": "JobRoleArn"},
		"Type": "PROFILE",
		"DatasetName": "orders",
		"OutputLocation": {"Bucket": "profiles"}
	}`, string(data))
}

func TestDatasetSerialization(t *testing.T) {
	dataset := Dataset{
		Name:   "orders",
		Format: "CSV",
		Input: Dataset_Input{
			S3InputDefinition: Dataset_S3Location{Bucket: "raw", Key: "orders/"},
		},
		FormatOptions: Dataset_FormatOptions{
			Csv: Dataset_CsvOptions{Delimiter: ",", HeaderRow: true},
		},
		PathOptions: Dataset_PathOptions{
			FilesLimit: Dataset_FilesLimit{MaxFiles: 10, OrderedBy: "LAST_MODIFIED_DATE"},
		},
	}

	data, err := json.Marshal(dataset)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Name": "orders",
		"Format": "CSV",
		"Input": {"S3InputDefinition": {"Bucket": "raw", "Key": "orders/"}},
		"FormatOptions": {"Csv": {"Delimiter": ",", "HeaderRow": true}},
		"PathOptions": {"FilesLimit": {"MaxFiles": 10, "OrderedBy": "LAST_MODIFIED_DATE"}}
	}`, string(data))
}

func TestPropertyTypeValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   wetwire.Validator
		message string
	}{
		{"S3Location", Dataset_S3Location{}, "AWS::DataBrew::Dataset.S3Location: Required property 'Bucket' is missing"},
		{"DatetimeOptions", Dataset_DatetimeOptions{}, "AWS::DataBrew::Dataset.DatetimeOptions: Required property 'Format' is missing"},
		{"Recipe", Job_Recipe{Version: "1.0"}, "AWS::DataBrew::Job.Recipe: Required property 'Name' is missing"},
		{"Sample", Project_Sample{Size: 500}, "AWS::DataBrew::Project.Sample: Required property 'Type' is missing"},
		{"Threshold", Ruleset_Threshold{Type_: "GREATER_THAN"}, "AWS::DataBrew::Ruleset.Threshold: Required property 'Value' is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.value.Validate(), tt.message)
		})
	}
}

func TestRecipe_Steps(t *testing.T) {
	recipe := Recipe{
		Name: "clean-orders",
		Steps: []any{
			Recipe_RecipeStep{
				Action: Recipe_Action{
					Operation:  "UPPER_CASE",
					Parameters: map[string]any{"sourceColumn": "country"},
				},
				ConditionExpressions: []any{
					Recipe_ConditionExpression{Condition: "IS_NOT_MISSING", TargetColumn: "country"},
				},
			},
		},
	}
	require.NoError(t, recipe.Validate())

	data, err := json.Marshal(recipe)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Name": "clean-orders",
		"Steps": [{
			"Action": {"Operation": "UPPER_CASE", "Parameters": {"sourceColumn": "country"}},
			"ConditionExpressions": [{"Condition": "IS_NOT_MISSING", "TargetColumn": "country"}]
		}]
	}`, string(data))
}

func TestSchedule_FieldAccess(t *testing.T) {
	schedule := Schedule{
		Name:           "nightly",
		CronExpression: "cron(0 2 * * ? *)",
		JobNames:       []any{"cleanup", "profile"},
	}

	assert.Equal(t, "nightly", schedule.Name)
	assert.Equal(t, "cron(0 2 * * ? *)", schedule.CronExpression)
	assert.Equal(t, []any{"cleanup", "profile"}, schedule.JobNames)
	assert.Nil(t, schedule.Tags)
}
