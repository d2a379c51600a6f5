package pattern

import (
	"context"
	"fmt"
	"regexp"

	"github.com/corviraptor/mclog-go/pkg/mclog"
)

// Capture group names read by RegexParser.
const (
	groupName    = "name"
	groupMessage = "message"
)

// RegexParser is a Parser that recognizes chat lines with user-defined
// regular expressions from a pattern file.
//
// Patterns are tried in file order and the first one that matches the
// info line content produces the message, so a line yields at most one
// message. The timestamp always comes from the info line.
//
// RegexParser is safe for concurrent use by multiple goroutines.
type RegexParser struct {
	patterns []*compiledPattern
}

type compiledPattern struct {
	id      string
	source  mclog.SourceKind
	regex   *regexp.Regexp
	nameIdx int // -1 when the pattern has no name group
	bodyIdx int
}

// NewRegexParser compiles every pattern of pf.
// Returns a *PatternError for invalid regex syntax or missing capture groups.
func NewRegexParser(pf *PatternFile) (*RegexParser, error) {
	if pf == nil {
		return nil, fmt.Errorf("pattern file is nil")
	}

	patterns := make([]*compiledPattern, 0, len(pf.Patterns))
	for i, p := range pf.Patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "regex",
				Message: fmt.Sprintf("invalid regular expression: %v", err),
				Cause:   err,
			}
		}

		cp := &compiledPattern{
			id:      p.ID,
			source:  mclog.SourceKind(p.Source),
			regex:   re,
			nameIdx: re.SubexpIndex(groupName),
			bodyIdx: re.SubexpIndex(groupMessage),
		}
		if cp.bodyIdx < 0 {
			return nil, &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "regex",
				Message: fmt.Sprintf("missing named group (?P<%s>...)", groupMessage),
			}
		}
		if cp.source == mclog.SourceNamed && cp.nameIdx < 0 {
			return nil, &PatternError{
				Index:   i,
				ID:      p.ID,
				Field:   "regex",
				Message: fmt.Sprintf("source named requires named group (?P<%s>...)", groupName),
			}
		}

		patterns = append(patterns, cp)
	}

	return &RegexParser{patterns: patterns}, nil
}

// NewRegexParserFromFile loads a pattern file and creates a RegexParser in one step.
//
// Example:
//
//	parser, err := pattern.NewRegexParserFromFile("patterns.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewRegexParserFromFile(path string) (*RegexParser, error) {
	pf, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewRegexParser(pf)
}

// ParseLine implements the mclog.Parser interface.
// Lines that are not Render thread INFO lines never match.
func (p *RegexParser) ParseLine(ctx context.Context, line string) (mclog.ParseResult, error) {
	info, ok := mclog.ParseInfoLine(line)
	if !ok {
		return mclog.ParseResult{Matched: false}, nil
	}

	for _, cp := range p.patterns {
		match := cp.regex.FindStringSubmatch(info.Content)
		if match == nil {
			continue
		}

		msg := mclog.ChatMessage{
			Time:    info.Time,
			Message: match[cp.bodyIdx],
			Source:  mclog.Source{Kind: cp.source},
		}
		if cp.source == mclog.SourceNamed {
			msg.Source.Name = match[cp.nameIdx]
		}

		return mclog.ParseResult{
			Messages: []mclog.ChatMessage{msg},
			Matched:  true,
		}, nil
	}

	return mclog.ParseResult{Matched: false}, nil
}

// Ensure RegexParser implements mclog.Parser.
var _ mclog.Parser = (*RegexParser)(nil)
