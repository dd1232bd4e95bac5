package graph

import (
	"strings"
	"testing"

	wetwire "github.com/lex00/wetwire-l1-go"
)

func mediaTemplate() *wetwire.Template {
	return &wetwire.Template{
		Parameters: map[string]wetwire.Parameter{"Env": {Type: "String"}},
		Resources: map[string]wetwire.ResourceDef{
			"LiveChannel": {
				Type:       "AWS::MediaPackage::Channel",
				Properties: map[string]any{"Id": map[string]any{"Fn::Sub": "${Env}-live"}},
			},
			"HlsEndpoint": {
				Type: "AWS::MediaPackage::OriginEndpoint",
				Properties: map[string]any{
					"Id":          "live-hls",
					"ChannelId":   map[string]any{"Ref": "LiveChannel"},
					"Description": map[string]any{"Fn::GetAtt": []any{"LiveChannel", "Arn"}},
				},
			},
			"Cleanup": {
				Type:      "AWS::DataBrew::Job",
				DependsOn: []string{"HlsEndpoint"},
			},
		},
	}
}

func TestGenerator_Generate_DOT(t *testing.T) {
	gen := &Generator{}
	var sb strings.Builder
	if err := gen.Generate(mediaTemplate(), &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := sb.String()
	if !strings.Contains(output, "digraph") {
		t.Error("expected digraph declaration")
	}
	for _, want := range []string{
		"LiveChannel", "AWS::MediaPackage::Channel",
		"HlsEndpoint", "AWS::MediaPackage::OriginEndpoint",
		"Cleanup", "AWS::DataBrew::Job",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in node labels", want)
		}
	}
	if !strings.Contains(output, "blue") {
		t.Error("expected blue color for GetAtt edge")
	}
	if !strings.Contains(output, "dashed") {
		t.Error("expected dashed DependsOn edge")
	}
	if strings.Contains(output, "ellipse") {
		t.Error("parameters should be omitted by default")
	}
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	gen := &Generator{ClusterByService: true, IncludeParameters: true}
	first, err := gen.GenerateString(mediaTemplate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := gen.GenerateString(mediaTemplate())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatal("graph output is not stable")
		}
	}
}

func TestGenerator_IncludeParameters(t *testing.T) {
	gen := &Generator{IncludeParameters: true}
	output, err := gen.GenerateString(mediaTemplate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "ellipse") {
		t.Error("expected parameter node")
	}
}

func TestGenerator_ClusterByService(t *testing.T) {
	gen := &Generator{ClusterByService: true}
	output, err := gen.GenerateString(mediaTemplate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "cluster_MediaPackage") {
		t.Error("expected MediaPackage cluster")
	}
	if strings.Contains(output, "cluster_DataBrew") {
		t.Error("single-resource services should not be clustered")
	}
}

func TestGenerator_Mermaid(t *testing.T) {
	gen := &Generator{Format: FormatMermaid}
	output, err := gen.GenerateString(mediaTemplate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "flowchart") && !strings.Contains(output, "graph") {
		t.Errorf("expected mermaid header, got:\n%s", output)
	}
	if strings.Contains(output, "digraph") {
		t.Error("expected mermaid format, not DOT")
	}
}

func TestEdges(t *testing.T) {
	tmpl := mediaTemplate()
	gen := &Generator{}

	edges := gen.edges(tmpl, "HlsEndpoint")
	if edges["LiveChannel"] != edgeRef|edgeGetAtt {
		t.Errorf("HlsEndpoint -> LiveChannel = %b, want Ref and GetAtt", edges["LiveChannel"])
	}

	if got := gen.edges(tmpl, "LiveChannel"); len(got) != 0 {
		t.Errorf("parameter edges should be skipped, got %v", got)
	}

	withParams := (&Generator{IncludeParameters: true}).edges(tmpl, "LiveChannel")
	if withParams["Env"] != edgeRef {
		t.Errorf("LiveChannel -> Env = %b, want Ref", withParams["Env"])
	}

	if got := gen.edges(tmpl, "Cleanup"); got["HlsEndpoint"] != edgeDependsOn {
		t.Errorf("Cleanup -> HlsEndpoint = %b, want DependsOn", got["HlsEndpoint"])
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatDOT, false},
		{"dot", FormatDOT, false},
		{"Mermaid", FormatMermaid, false},
		{"svg", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestService(t *testing.T) {
	tests := map[string]string{
		"AWS::MediaPackage::Channel": "MediaPackage",
		"AWS::DataBrew::Job":         "DataBrew",
		"Custom::Thing":              "Custom",
		"bogus":                      "Other",
	}
	for in, want := range tests {
		if got := Service(in); got != want {
			t.Errorf("Service(%q) = %q, want %q", in, got, want)
		}
	}
}
