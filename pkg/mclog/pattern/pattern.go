// Package pattern lets users describe extra chat shapes with regular
// expressions in a YAML file, for servers and mods whose chat lines do not
// follow the vanilla "<Name> text" layout.
package pattern

// PatternFile represents the structure of a YAML pattern file.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  - id: discord_relay
//	    source: named
//	    regex: '^\[CHAT\] \[Discord\] (?P<name>[^:]+): (?P<message>.*)$'
//	  - id: whisper
//	    source: named
//	    regex: '^\[CHAT\] (?P<name>\S+) whispers to you: (?P<message>.*)$'
type PatternFile struct {
	// Version is the pattern file format version. Currently only version 1 is supported.
	Version int `yaml:"version"`

	// Patterns is the list of pattern definitions, tried in order.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern is a single chat shape.
//
// The regex is matched against the content of a Render thread INFO line
// (the part after "[Render thread/INFO]: "). It must have a named group
// "message"; patterns with source "named" also need a group "name".
type Pattern struct {
	// ID is a unique identifier for this pattern (e.g., "discord_relay").
	ID string `yaml:"id"`

	// Source is the source kind of produced messages: named, emote or system.
	Source string `yaml:"source"`

	// Regex is the regular expression matched against the line content.
	Regex string `yaml:"regex"`
}
