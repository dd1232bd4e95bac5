package mediapackage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wetwire "github.com/lex00/wetwire-l1-go"
	"github.com/lex00/wetwire-l1-go/intrinsics"
)

// TestResourceTypes verifies all 5 MediaPackage resource types return correct CloudFormation types.
func TestResourceTypes(t *testing.T) {
	tests := []struct {
		name     string
		resource wetwire.Resource
		expected string
	}{
		{"Asset", Asset{}, "AWS::MediaPackage::Asset"},
		{"Channel", Channel{}, "AWS::MediaPackage::Channel"},
		{"OriginEndpoint", OriginEndpoint{}, "AWS::MediaPackage::OriginEndpoint"},
		{"PackagingConfiguration", PackagingConfiguration{}, "AWS::MediaPackage::PackagingConfiguration"},
		{"PackagingGroup", PackagingGroup{}, "AWS::MediaPackage::PackagingGroup"},
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
		{"Asset", Asset{}, []string{"Id", "PackagingGroupId", "SourceArn", "SourceRoleArn"}},
		{"Channel", Channel{}, []string{"Id"}},
		{"OriginEndpoint", OriginEndpoint{}, []string{"ChannelId", "Id"}},
		{"PackagingConfiguration", PackagingConfiguration{}, []string{"Id", "PackagingGroupId"}},
		{"PackagingGroup", PackagingGroup{}, []string{"Id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, wetwire.MissingProperties(tt.resource.Validate()))
		})
	}
}

func TestChannel_OnlyRequired(t *testing.T) {
	channel := Channel{Id: "live"}
	require.NoError(t, channel.Validate())

	data, err := json.Marshal(channel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id": "live"}`, string(data))
}

func TestChannel_IngestEndpointsName(t *testing.T) {
	channel := Channel{
		Id: "live",
		HlsIngest: Channel_HlsIngest{
			IngestEndpoints: []any{Channel_IngestEndpoint{Id: "1", Username: "u", Password: "p", Url: "https://in"}},
		},
	}

	data, err := json.Marshal(channel)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ingestEndpoints"`)
	assert.NotContains(t, string(data), `"IngestEndpoints"`)
}

func TestOriginEndpoint_HlsWithSpeke(t *testing.T) {
	endpoint := OriginEndpoint{
		Id:        "live-hls",
		ChannelId: intrinsics.Ref{LogicalName: "LiveChannel"},
		HlsPackage: OriginEndpoint_HlsPackage{
			SegmentDurationSeconds: 6,
			PlaylistWindowSeconds:  60,
			Encryption: OriginEndpoint_HlsEncryption{
				SpekeKeyProvider: OriginEndpoint_SpekeKeyProvider{
					ResourceId: "live",
					RoleArn:    "arn:aws:iam::123456789012:role/speke",
					SystemIds:  []any{"81376844-f976-481e-a84e-cc25d39b0b33"},
					Url:        "https://speke.example.com",
				},
			},
		},
		Whitelist: []any{"10.0.0.0/8"},
	}
	require.NoError(t, endpoint.Validate())

	data, err := json.Marshal(endpoint)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	hls := parsed["HlsPackage"].(map[string]any)
	assert.Equal(t, 6.0, hls["SegmentDurationSeconds"])
	speke := hls["Encryption"].(map[string]any)["SpekeKeyProvider"].(map[string]any)
	assert.Equal(t, "live", speke["ResourceId"])
	assert.NotContains(t, speke, "CertificateArn")
}

func TestSpekeKeyProvider_Required(t *testing.T) {
	err := OriginEndpoint_SpekeKeyProvider{Url: "https://speke"}.Validate()
	assert.Equal(t, []string{"ResourceId", "RoleArn", "SystemIds"}, wetwire.MissingProperties(err))

	err = PackagingConfiguration_SpekeKeyProvider{Url: "https://speke"}.Validate()
	assert.Equal(t, []string{"RoleArn", "SystemIds"}, wetwire.MissingProperties(err))
}

func TestPackagingConfiguration_Dash(t *testing.T) {
	config := PackagingConfiguration{
		Id:               "vod-dash",
		PackagingGroupId: intrinsics.Ref{LogicalName: "VodGroup"},
		DashPackage: PackagingConfiguration_DashPackage{
			DashManifests: []any{
				PackagingConfiguration_DashManifest{ManifestName: "index", Profile: "NONE"},
			},
			SegmentDurationSeconds: 2,
		},
	}
	require.NoError(t, config.Validate())
	assert.Equal(t, []string{"DashManifests"},
		wetwire.MissingProperties(PackagingConfiguration_DashPackage{}.Validate()))
}

func TestAttrRefsNotSerialized(t *testing.T) {
	group := PackagingGroup{
		Id:         "vod",
		Arn:        wetwire.AttrRef{Resource: "VodGroup", Attribute: "Arn"},
		DomainName: wetwire.AttrRef{Resource: "VodGroup", Attribute: "DomainName"},
	}

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Id": "vod"}`, string(data))
}

func TestAsset_EgressEndpoint(t *testing.T) {
	assert.Equal(t, []string{"PackagingConfigurationId", "Url"},
		wetwire.MissingProperties(Asset_EgressEndpoint{}.Validate()))
	assert.NoError(t, Asset_EgressEndpoint{PackagingConfigurationId: "hls", Url: "https://x"}.Validate())
}
