package mclog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortLog = `[19:08:12] [Render thread/INFO]: [CHAT] * Abigail pockets the lantern
[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> holy fuck youre a pixel
[19:08:24] [Render thread/INFO]: [CHAT] <Azure Caraway> gots it!
[19:09:02] [Render thread/INFO]: [System] [CHAT] Set own game mode to Spectator Mode
[19:13:11] [Render thread/WARN]: Received passengers for unknown entity
[19:13:43] [Render thread/INFO]: [CHAT] <Abigail> Take care now
`

func TestParseLine(t *testing.T) {
	msg, ok := mclog.ParseLine("[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hi")
	require.True(t, ok)
	assert.Equal(t, "EDDIE", msg.Source.Name)

	_, ok = mclog.ParseLine("[19:13:11] [Render thread/WARN]: nope")
	assert.False(t, ok)
}

func TestParseInfoLine(t *testing.T) {
	info, ok := mclog.ParseInfoLine("[19:08:21] [Render thread/INFO]: Loaded 7 advancements")
	require.True(t, ok)
	assert.Equal(t, mclog.InfoLine{Time: "19:08:21", Content: "Loaded 7 advancements"}, info)
}

func TestParseAll_Default(t *testing.T) {
	got, err := mclog.ParseAll(context.Background(), shortLog)
	require.NoError(t, err)
	assert.Equal(t, mclog.ExtractChatMessages(shortLog), got)
	assert.Len(t, got, 5)
}

func TestParseAll_Filters(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		opts      []mclog.ParseOption
		wantTimes []string
	}{
		{
			name:      "include sources",
			opts:      []mclog.ParseOption{mclog.WithIncludeSources(mclog.SourceSystem, mclog.SourceEmote)},
			wantTimes: []string{"19:08:12", "19:09:02"},
		},
		{
			name:      "exclude sources",
			opts:      []mclog.ParseOption{mclog.WithExcludeSources(mclog.SourceNamed)},
			wantTimes: []string{"19:08:12", "19:09:02"},
		},
		{
			name: "exclude wins over include",
			opts: []mclog.ParseOption{
				mclog.WithSourceFilter(
					[]mclog.SourceKind{mclog.SourceSystem, mclog.SourceEmote},
					[]mclog.SourceKind{mclog.SourceEmote},
				),
			},
			wantTimes: []string{"19:09:02"},
		},
		{
			name:      "include names keeps emote and system",
			opts:      []mclog.ParseOption{mclog.WithIncludeNames("EDDIE")},
			wantTimes: []string{"19:08:12", "19:08:21", "19:09:02"},
		},
		{
			name:      "include names is exact",
			opts:      []mclog.ParseOption{mclog.WithIncludeNames("eddie", "Azure")},
			wantTimes: []string{"19:08:12", "19:09:02"},
		},
		{
			name:      "exclude names",
			opts:      []mclog.ParseOption{mclog.WithExcludeNames("EDDIE", "Abigail")},
			wantTimes: []string{"19:08:12", "19:08:24", "19:09:02"},
		},
		{
			name: "settings",
			opts: []mclog.ParseOption{mclog.WithSettings(mclog.Settings{
				IncludedNames:   []string{"EDDIE", "Abigail"},
				ExcludedNames:   []string{"Abigail"},
				ExcludedSources: []mclog.SourceKind{mclog.SourceSystem},
			})},
			wantTimes: []string{"19:08:12", "19:08:21"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mclog.ParseAll(ctx, shortLog, tt.opts...)
			require.NoError(t, err)
			times := make([]string, 0, len(got))
			for _, m := range got {
				times = append(times, m.Time)
			}
			assert.Equal(t, tt.wantTimes, times)
		})
	}
}

func TestParseAll_IncludeRawLine(t *testing.T) {
	log := "[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hi\r\n"

	got, err := mclog.ParseAll(context.Background(), log, mclog.WithIncludeRawLine(true))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hi", got[0].RawLine)

	got, err = mclog.ParseAll(context.Background(), log)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].RawLine)
}

func failOn(substr string) mclog.Parser {
	return mclog.ParserFunc(func(ctx context.Context, line string) (mclog.ParseResult, error) {
		if strings.Contains(line, substr) {
			return mclog.ParseResult{}, errors.New("boom")
		}
		return mclog.DefaultParser{}.ParseLine(ctx, line)
	})
}

func TestParseAll_SkipsParserErrors(t *testing.T) {
	got, err := mclog.ParseAll(context.Background(), shortLog, mclog.WithParser(failOn("EDDIE")))
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestParseAll_StopOnError(t *testing.T) {
	got, err := mclog.ParseAll(context.Background(), shortLog,
		mclog.WithParser(failOn("EDDIE")),
		mclog.WithStopOnError(true),
	)
	require.Error(t, err)

	var perr *mclog.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Line, "<EDDIE>")
	assert.EqualError(t, errors.Unwrap(err), "boom")
	assert.Len(t, got, 1) // only the emote before the failing line
}

func TestParse_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []mclog.ChatMessage
	var gotErr error
	for msg, err := range mclog.Parse(ctx, shortLog) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, msg)
		cancel()
	}
	assert.ErrorIs(t, gotErr, context.Canceled)
	assert.Len(t, got, 1)
}

func TestParse_WithParsersCustomFirst(t *testing.T) {
	custom := mclog.ParserFunc(func(ctx context.Context, line string) (mclog.ParseResult, error) {
		if !strings.Contains(line, "[Discord]") {
			return mclog.ParseResult{}, nil
		}
		return mclog.ParseResult{
			Messages: []mclog.ChatMessage{named("discord", "relayed")},
			Matched:  true,
		}, nil
	})

	log := shortLog + "[19:20:00] [Render thread/INFO]: [CHAT] [Discord] kathrynne: relayed\n"
	got, err := mclog.ParseAll(context.Background(), log, mclog.WithParsers(custom, mclog.DefaultParser{}))
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, "discord", got[5].Source.Name)
}

func TestParse_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := mclog.ParseAll(context.Background(), shortLog,
		mclog.WithLogger(logger),
		mclog.WithParser(failOn("EDDIE")),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "skipping line")
	assert.Contains(t, buf.String(), "parse finished")
	assert.Contains(t, buf.String(), "messages=4")
}

func TestParse_NilOptionsIgnored(t *testing.T) {
	got, err := mclog.ParseAll(context.Background(), shortLog, nil, mclog.WithParser(nil), mclog.WithParsers())
	require.NoError(t, err)
	assert.Len(t, got, 5)
}
