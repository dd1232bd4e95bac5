package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferences(t *testing.T) {
	props := map[string]any{
		"ChannelId": map[string]any{"Ref": "LiveChannel"},
		"RoleArn":   map[string]any{"Fn::GetAtt": []any{"JobRole", "Arn"}},
		"Short":     map[string]any{"Fn::GetAtt": "VodGroup.DomainName"},
		"Name":      map[string]any{"Fn::Sub": "${AWS::StackName}-${Env}-${!Literal}"},
		"Nested": []any{
			map[string]any{"Key": "owner", "Value": map[string]any{"Ref": "Owner"}},
		},
	}

	refs := References(props)
	assert.Equal(t, []Reference{
		{Kind: KindSub, Target: "AWS::StackName"},
		{Kind: KindSub, Target: "Env"},
		{Kind: KindGetAtt, Target: "JobRole", Attribute: "Arn"},
		{Kind: KindRef, Target: "LiveChannel"},
		{Kind: KindRef, Target: "Owner"},
		{Kind: KindGetAtt, Target: "VodGroup", Attribute: "DomainName"},
	}, refs)
	assert.True(t, refs[0].IsPseudo())
	assert.False(t, refs[1].IsPseudo())
}

func TestReferences_SubWithVariables(t *testing.T) {
	v := map[string]any{
		"Fn::Sub": []any{
			"arn:aws:s3:::${Bucket}/${Channel.Arn}",
			map[string]any{"Bucket": map[string]any{"Ref": "AssetBucket"}},
		},
	}

	assert.Equal(t, []Reference{
		{Kind: KindRef, Target: "AssetBucket"},
		{Kind: KindSub, Target: "Channel", Attribute: "Arn"},
	}, References(v))
}

func TestReferences_PlainValues(t *testing.T) {
	assert.Empty(t, References("literal"))
	assert.Empty(t, References(map[string]any{"Ref": 5}))
	assert.Empty(t, References(nil))
}
