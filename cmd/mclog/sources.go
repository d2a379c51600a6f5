package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/spf13/cobra"
)

// ValidSources maps CLI source names to source kinds.
var ValidSources = map[string]mclog.SourceKind{
	"named":  mclog.SourceNamed,
	"emote":  mclog.SourceEmote,
	"system": mclog.SourceSystem,
}

// ValidSourceNames returns the accepted --sources values, sorted.
func ValidSourceNames() []string {
	names := make([]string, 0, len(ValidSources))
	for name := range ValidSources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeSources validates and dedupes source names.
// Matching is case-insensitive and ignores surrounding whitespace.
func NormalizeSources(names []string) ([]mclog.SourceKind, error) {
	if len(names) == 0 {
		return nil, nil
	}

	seen := make(map[mclog.SourceKind]bool, len(names))
	kinds := make([]mclog.SourceKind, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return nil, errors.New("empty source name")
		}
		kind, ok := ValidSources[key]
		if !ok {
			return nil, fmt.Errorf("unknown source %q (valid: %s)",
				name, strings.Join(ValidSourceNames(), ", "))
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// RejectOverlap returns an error if a source is both included and excluded.
func RejectOverlap(includes, excludes []mclog.SourceKind) error {
	for _, in := range includes {
		for _, ex := range excludes {
			if in == ex {
				return fmt.Errorf("source %q is both included and excluded", in)
			}
		}
	}
	return nil
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List chat source kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range ValidSourceNames() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
