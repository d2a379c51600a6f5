package mclog

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/corviraptor/mclog-go/internal/parser"
)

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLine parses a single log line into a chat message using the built-in shapes.
//
// Example:
//
//	line := "[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hello"
//	if msg, ok := mclog.ParseLine(line); ok {
//	    fmt.Printf("%s: %s\n", msg.Source.Name, msg.Message)
//	}
func ParseLine(line string) (ChatMessage, bool) {
	return parser.Parse(line)
}

// ParseInfoLine splits a single Render thread INFO line into time and content.
func ParseInfoLine(line string) (InfoLine, bool) {
	return parser.ParseInfoLine(line)
}

// Parse runs the configured parser over every line of log and yields the
// resulting chat messages in log order.
//
// Lines a parser fails on are skipped unless WithStopOnError is set, in which
// case a *ParseError is yielded and iteration ends. Context cancellation is
// checked between lines and yielded as the final error.
func Parse(ctx context.Context, log string, opts ...ParseOption) iter.Seq2[ChatMessage, error] {
	cfg := applyParseOptions(opts)

	return func(yield func(ChatMessage, error) bool) {
		var lines, emitted, skipped int
		defer func() {
			cfg.logger.Debug("parse finished",
				"lines", lines, "messages", emitted, "skipped", skipped)
		}()

		for raw := range strings.Lines(log) {
			if err := ctx.Err(); err != nil {
				yield(ChatMessage{}, err)
				return
			}
			line := trimLineEnding(raw)
			lines++

			result, err := cfg.parser.ParseLine(ctx, line)

			// Messages from a partially failed chain are still delivered.
			for _, msg := range result.Messages {
				if !cfg.filter.Allows(msg) {
					continue
				}
				if cfg.includeRawLine {
					msg.RawLine = line
				}
				emitted++
				if !yield(msg, nil) {
					return
				}
			}

			if err != nil {
				perr := &ParseError{Line: line, Err: err}
				if cfg.stopOnError {
					yield(ChatMessage{}, perr)
					return
				}
				skipped++
				cfg.logger.Debug("skipping line", "line", lines, "error", err)
			}
		}
	}
}

// ParseAll is like Parse but collects all messages into a slice.
// It returns the messages gathered before the first error.
func ParseAll(ctx context.Context, log string, opts ...ParseOption) ([]ChatMessage, error) {
	msgs := []ChatMessage{}
	for msg, err := range Parse(ctx, log, opts...) {
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
