package main

import (
	"fmt"

	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/corviraptor/mclog-go/pkg/mclog/pattern"
)

// buildParser builds a Parser from pattern file paths.
// Returns nil if no pattern files are given (use the default parser).
// Custom patterns run before the built-in classifier; the first match wins.
func buildParser(patternFiles []string) (mclog.Parser, error) {
	if len(patternFiles) == 0 {
		return nil, nil
	}

	parsers := make([]mclog.Parser, 0, len(patternFiles)+1)
	for i, path := range patternFiles {
		rp, err := pattern.NewRegexParserFromFile(path)
		if err != nil {
			// Error from pattern package is already sanitized (no path)
			return nil, fmt.Errorf("pattern file %d: %w", i+1, err)
		}
		parsers = append(parsers, rp)
	}
	parsers = append(parsers, mclog.DefaultParser{})

	return &mclog.ParserChain{
		Mode:    mclog.ChainFirst,
		Parsers: parsers,
	}, nil
}
