package mclog

import (
	"errors"
	"fmt"

	"github.com/corviraptor/mclog-go/internal/safefile"
	"gopkg.in/yaml.v3"
)

const (
	// MaxSettingsFileSize is the maximum allowed size for a settings file (64KB).
	MaxSettingsFileSize = 64 * 1024

	// SettingsVersion is the supported settings file format version.
	SettingsVersion = 1
)

// Settings is the post-parse name and source filter.
//
// Example YAML file:
//
//	version: 1
//	included_names: [EDDIE, kathrynne]
//	excluded_names: []
//	excluded_sources: [system]
type Settings struct {
	// IncludedNames, when non-empty, keeps only named messages from these players.
	IncludedNames []string `yaml:"included_names"`
	// ExcludedNames drops named messages from these players.
	ExcludedNames []string `yaml:"excluded_names"`
	// IncludedSources, when non-empty, keeps only these source kinds.
	IncludedSources []SourceKind `yaml:"included_sources"`
	// ExcludedSources drops these source kinds.
	ExcludedSources []SourceKind `yaml:"excluded_sources"`
}

type settingsFile struct {
	Version  int `yaml:"version"`
	Settings `yaml:",inline"`
}

// LoadSettings reads and validates a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := safefile.ReadRegular(path, MaxSettingsFileSize)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", safefile.StripPath(err))
	}
	return LoadSettingsBytes(data)
}

// LoadSettingsBytes parses and validates settings from YAML data.
func LoadSettingsBytes(data []byte) (Settings, error) {
	if len(data) == 0 {
		return Settings{}, errors.New("settings file is empty")
	}

	var sf settingsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Settings{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if sf.Version != SettingsVersion {
		return Settings{}, &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", sf.Version, SettingsVersion),
		}
	}
	if err := sf.Settings.Validate(); err != nil {
		return Settings{}, err
	}
	return sf.Settings, nil
}

// Validate checks for empty names and unknown source kinds.
func (s Settings) Validate() error {
	for field, names := range map[string][]string{
		"included_names": s.IncludedNames,
		"excluded_names": s.ExcludedNames,
	} {
		for i, n := range names {
			if n == "" {
				return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "name must not be empty"}
			}
		}
	}
	for field, kinds := range map[string][]SourceKind{
		"included_sources": s.IncludedSources,
		"excluded_sources": s.ExcludedSources,
	} {
		for i, k := range kinds {
			if !k.Valid() {
				return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: fmt.Sprintf("unknown source %q", k)}
			}
		}
	}
	return nil
}

// IsZero reports whether s filters nothing.
func (s Settings) IsZero() bool {
	return len(s.IncludedNames) == 0 && len(s.ExcludedNames) == 0 &&
		len(s.IncludedSources) == 0 && len(s.ExcludedSources) == 0
}

// Allows reports whether msg passes the filter.
func (s Settings) Allows(msg ChatMessage) bool {
	return s.compile().Allows(msg)
}

// FilterMessages returns the messages of msgs that pass s, in order.
func FilterMessages(msgs []ChatMessage, s Settings) []ChatMessage {
	f := s.compile()
	out := make([]ChatMessage, 0, len(msgs))
	for _, msg := range msgs {
		if f.Allows(msg) {
			out = append(out, msg)
		}
	}
	return out
}

func (s Settings) compile() *compiledFilter {
	f := newCompiledFilter(s.IncludedSources, s.ExcludedSources)
	f.setNames(s.IncludedNames, s.ExcludedNames)
	return f
}
