package mclog

import "log/slog"

// ParseOption configures Parse and ParseAll behavior.
type ParseOption func(*parseConfig)

// parseConfig holds internal configuration for parsing.
type parseConfig struct {
	filter         *compiledFilter
	includeRawLine bool
	stopOnError    bool
	parser         Parser
	logger         *slog.Logger
}

// defaultParseConfig returns a parseConfig with sensible defaults.
func defaultParseConfig() *parseConfig {
	return &parseConfig{
		parser: DefaultParser{},
	}
}

// applyParseOptions applies functional options to a parseConfig.
func applyParseOptions(opts []ParseOption) *parseConfig {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger
	}
	return cfg
}

func (c *parseConfig) ensureFilter() *compiledFilter {
	if c.filter == nil {
		c.filter = &compiledFilter{}
	}
	return c.filter
}

// WithParser sets a custom parser.
// If p is nil, this option has no effect (the default parser remains active).
func WithParser(p Parser) ParseOption {
	return func(c *parseConfig) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithParsers combines multiple parsers using ChainFirst mode, so the
// first parser that recognizes a line decides its message.
// At least one parser is required.
func WithParsers(parsers ...Parser) ParseOption {
	return func(c *parseConfig) {
		if len(parsers) > 0 {
			c.parser = &ParserChain{
				Mode:    ChainFirst,
				Parsers: parsers,
			}
		}
	}
}

// WithIncludeSources keeps only messages of the given source kinds.
// If called multiple times, only the last call takes effect.
func WithIncludeSources(kinds ...SourceKind) ParseOption {
	return func(c *parseConfig) {
		c.ensureFilter().include = kindSet(kinds)
	}
}

// WithExcludeSources drops messages of the given source kinds.
// Exclude takes precedence over include.
func WithExcludeSources(kinds ...SourceKind) ParseOption {
	return func(c *parseConfig) {
		c.ensureFilter().exclude = kindSet(kinds)
	}
}

// WithSourceFilter sets both include and exclude source filters.
func WithSourceFilter(include, exclude []SourceKind) ParseOption {
	return func(c *parseConfig) {
		c.ensureFilter().setSources(include, exclude)
	}
}

// WithIncludeNames keeps only named messages from the given players.
// Emote and system messages are not affected. Names match exactly.
func WithIncludeNames(names ...string) ParseOption {
	return func(c *parseConfig) {
		c.ensureFilter().includeNames = nameSet(names)
	}
}

// WithExcludeNames drops named messages from the given players.
// Exclude takes precedence over include.
func WithExcludeNames(names ...string) ParseOption {
	return func(c *parseConfig) {
		c.ensureFilter().excludeNames = nameSet(names)
	}
}

// WithSettings applies the name and source filters from s.
// It replaces any filter set by earlier options.
func WithSettings(s Settings) ParseOption {
	return func(c *parseConfig) {
		c.filter = s.compile()
	}
}

// WithIncludeRawLine includes the original log line in ChatMessage.RawLine.
func WithIncludeRawLine(include bool) ParseOption {
	return func(c *parseConfig) {
		c.includeRawLine = include
	}
}

// WithStopOnError stops parsing on the first parser error instead of skipping the line.
// Default: false. The built-in parser never fails; this only matters for custom parsers.
func WithStopOnError(stop bool) ParseOption {
	return func(c *parseConfig) {
		c.stopOnError = stop
	}
}

// WithLogger sets a logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		c.logger = logger
	}
}
