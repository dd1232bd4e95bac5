package template

import (
	"fmt"
	"testing"

	"github.com/lex00/wetwire-l1-go/intrinsics"
	"github.com/lex00/wetwire-l1-go/resources/mediapackage"
)

// liveBuilder registers n channels, each with an HLS endpoint that Refs it.
func liveBuilder(b *testing.B, n int) *Builder {
	b.Helper()
	builder := NewBuilder()
	for i := 0; i < n; i++ {
		channelID := fmt.Sprintf("Channel%d", i)
		entries := []Entry{
			{LogicalID: channelID, Resource: mediapackage.Channel{
				Id:   fmt.Sprintf("live-%d", i),
				Tags: []any{intrinsics.Tag{Key: "Feed", Value: fmt.Sprint(i)}},
			}},
			{LogicalID: fmt.Sprintf("Hls%d", i), Resource: mediapackage.OriginEndpoint{
				Id:         fmt.Sprintf("live-%d-hls", i),
				ChannelId:  intrinsics.Ref{LogicalName: channelID},
				HlsPackage: mediapackage.OriginEndpoint_HlsPackage{SegmentDurationSeconds: 6},
			}},
		}
		for _, e := range entries {
			if err := builder.AddResource(e); err != nil {
				b.Fatal(err)
			}
		}
	}
	return builder
}

func BenchmarkSynth(b *testing.B) {
	for _, channels := range []int{5, 25, 100} {
		builder := liveBuilder(b, channels)

		b.Run(fmt.Sprintf("build/channels_%d", channels), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := builder.Build(); err != nil {
					b.Fatal(err)
				}
			}
		})

		tmpl, err := builder.Build()
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("json/channels_%d", channels), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ToJSON(tmpl); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("yaml/channels_%d", channels), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ToYAML(tmpl); err != nil {
					b.Fatal(err)
				}
			}
		})

		deps := Dependencies(tmpl)
		b.Run(fmt.Sprintf("sort/channels_%d", channels), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := TopologicalSort(deps); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
