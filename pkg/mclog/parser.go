package mclog

import (
	"context"
	"errors"
)

// ParseResult represents the result of parsing a log line.
type ParseResult struct {
	// Messages contains the parsed chat messages.
	Messages []ChatMessage

	// Matched indicates whether the parser matched the input.
	// This can be true even if Messages is empty (e.g., a filter that matches but outputs nothing).
	Matched bool
}

// Parser is the interface for log line parsers.
// Implementations include DefaultParser (built-in chat shapes)
// and pattern.RegexParser (user-defined YAML patterns).
type Parser interface {
	// ParseLine parses a single log line.
	// Returns ParseResult with Matched=true if the line was recognized.
	// Returns error only for unexpected failures (not for unrecognized lines).
	ParseLine(ctx context.Context, line string) (ParseResult, error)
}

// ParserFunc is an adapter to allow ordinary functions to be used as Parsers.
type ParserFunc func(ctx context.Context, line string) (ParseResult, error)

// ParseLine implements the Parser interface.
func (f ParserFunc) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	return f(ctx, line)
}

// ChainMode specifies how ParserChain executes parsers.
type ChainMode int

const (
	// ChainAll executes all parsers and combines results (default).
	ChainAll ChainMode = iota

	// ChainFirst stops at the first parser that matches.
	ChainFirst

	// ChainContinueOnError skips parsers that return errors and continues.
	// Errors are collected and returned together at the end.
	ChainContinueOnError
)

// ParserChain combines multiple parsers.
type ParserChain struct {
	Mode    ChainMode
	Parsers []Parser
}

// ParseLine implements the Parser interface.
//
// If the context is cancelled during execution, ParseLine returns
// the messages collected so far together with the context error.
func (c *ParserChain) ParseLine(ctx context.Context, line string) (ParseResult, error) {
	var all []ChatMessage
	var errs []error
	anyMatched := false

	for _, p := range c.Parsers {
		if err := ctx.Err(); err != nil {
			return ParseResult{Messages: all, Matched: anyMatched}, err
		}

		if p == nil {
			continue
		}

		result, err := p.ParseLine(ctx, line)
		if err != nil {
			if c.Mode == ChainContinueOnError {
				errs = append(errs, err)
				continue
			}
			return ParseResult{}, err
		}
		if result.Matched {
			anyMatched = true
			all = append(all, result.Messages...)
			if c.Mode == ChainFirst {
				return ParseResult{Messages: all, Matched: true}, nil
			}
		}
	}

	if len(errs) > 0 {
		return ParseResult{Messages: all, Matched: anyMatched}, errors.Join(errs...)
	}

	return ParseResult{Messages: all, Matched: anyMatched}, nil
}
