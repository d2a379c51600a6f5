package pattern

import (
	"context"
	"testing"
)

func benchPatterns() []Pattern {
	return []Pattern{
		{ID: "discord_relay", Source: "named", Regex: `^\[CHAT\] \[Discord\] (?P<name>[^:]+): (?P<message>.*)$`},
		{ID: "announcement", Source: "system", Regex: `^\[CHAT\] \[Announcement\] (?P<message>.*)$`},
		{ID: "party", Source: "named", Regex: `^\[CHAT\] Party > (?P<name>\w+): (?P<message>.*)$`},
		{ID: "roleplay", Source: "emote", Regex: `^\[CHAT\] \[RP\] (?P<message>.*)$`},
	}
}

// BenchmarkRegexParser_ParseLine benchmarks a four pattern file against
// lines that match early, late, or not at all.
func BenchmarkRegexParser_ParseLine(b *testing.B) {
	parser, err := NewRegexParser(&PatternFile{Version: 1, Patterns: benchPatterns()})
	if err != nil {
		b.Fatalf("Failed to create parser: %v", err)
	}

	cases := []struct {
		name string
		line string
	}{
		{"FirstMatch", "[19:20:01] [Render thread/INFO]: [CHAT] [Discord] kathrynne: on my way"},
		{"LastMatch", "[19:20:02] [Render thread/INFO]: [CHAT] [RP] The lantern flickers"},
		{"NoMatch", "[19:20:03] [Render thread/INFO]: [CHAT] <EDDIE> plain chat"},
		{"NotInfoLine", "[19:20:04] [Render thread/WARN]: Received passengers for unknown entity"},
	}

	ctx := context.Background()
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = parser.ParseLine(ctx, tc.line)
			}
		})
	}
}
