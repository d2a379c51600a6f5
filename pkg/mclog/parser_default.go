package mclog

import (
	"context"

	"github.com/corviraptor/mclog-go/internal/parser"
)

// DefaultParser recognizes the built-in chat shapes: system, emote and named.
type DefaultParser struct{}

// ParseLine implements the Parser interface. It never returns an error.
func (DefaultParser) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	msg, ok := parser.Parse(line)
	if !ok {
		return ParseResult{Matched: false}, nil
	}
	return ParseResult{Messages: []ChatMessage{msg}, Matched: true}, nil
}

// Ensure DefaultParser implements Parser.
var _ Parser = DefaultParser{}
