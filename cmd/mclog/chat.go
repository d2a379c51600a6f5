package main

import (
	"fmt"

	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/spf13/cobra"
)

// chatFlags holds the flags shared by the chat and view commands.
type chatFlags struct {
	logDir         string
	sources        []string
	excludeSources []string
	includeNames   []string
	excludeNames   []string
	settingsFile   string
	patternFiles   []string
	includeRaw     bool
	stopOnError    bool
}

func (f *chatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.logDir, "log-dir", "d", "",
		"Minecraft log directory (auto-detected if not specified)")
	cmd.Flags().StringSliceVarP(&f.sources, "sources", "s", nil,
		"Sources to show (comma-separated: named,emote,system)")
	cmd.Flags().StringSliceVar(&f.excludeSources, "exclude-sources", nil,
		"Sources to hide (comma-separated)")
	cmd.Flags().StringSliceVar(&f.includeNames, "include-names", nil,
		"Only show named messages from these players (exact match)")
	cmd.Flags().StringSliceVar(&f.excludeNames, "exclude-names", nil,
		"Hide named messages from these players (exact match)")
	cmd.Flags().StringVar(&f.settingsFile, "settings", "",
		"YAML settings file with name and source filters")
	cmd.Flags().StringSliceVar(&f.patternFiles, "patterns", nil,
		"YAML pattern files for custom chat formats (repeatable)")
	cmd.Flags().BoolVar(&f.includeRaw, "raw", false,
		"Include raw log lines in output")
	cmd.Flags().BoolVar(&f.stopOnError, "stop-on-error", false,
		"Stop at the first line a custom parser fails on")

	_ = cmd.RegisterFlagCompletionFunc("sources", completeSources)
	_ = cmd.RegisterFlagCompletionFunc("exclude-sources", completeSources)
}

func completeSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return ValidSourceNames(), cobra.ShellCompDirectiveNoFileComp
}

// settings merges the settings file with the filter flags.
// Flag values are appended to the lists from the file.
func (f *chatFlags) settings() (mclog.Settings, error) {
	var s mclog.Settings
	if f.settingsFile != "" {
		loaded, err := mclog.LoadSettings(f.settingsFile)
		if err != nil {
			return mclog.Settings{}, err
		}
		s = loaded
	}

	include, err := NormalizeSources(f.sources)
	if err != nil {
		return mclog.Settings{}, fmt.Errorf("--sources: %w", err)
	}
	exclude, err := NormalizeSources(f.excludeSources)
	if err != nil {
		return mclog.Settings{}, fmt.Errorf("--exclude-sources: %w", err)
	}
	if err := RejectOverlap(include, exclude); err != nil {
		return mclog.Settings{}, err
	}

	s.IncludedSources = append(s.IncludedSources, include...)
	s.ExcludedSources = append(s.ExcludedSources, exclude...)
	s.IncludedNames = append(s.IncludedNames, f.includeNames...)
	s.ExcludedNames = append(s.ExcludedNames, f.excludeNames...)

	if err := s.Validate(); err != nil {
		return mclog.Settings{}, fmt.Errorf("invalid filter: %w", err)
	}
	return s, nil
}

// parseOptions builds the mclog options for the flags.
func (f *chatFlags) parseOptions() ([]mclog.ParseOption, error) {
	s, err := f.settings()
	if err != nil {
		return nil, err
	}
	parser, err := buildParser(f.patternFiles)
	if err != nil {
		return nil, err
	}

	opts := []mclog.ParseOption{
		mclog.WithSettings(s),
		mclog.WithIncludeRawLine(f.includeRaw),
		mclog.WithStopOnError(f.stopOnError),
		mclog.WithLogger(newLogger()),
	}
	if parser != nil {
		opts = append(opts, mclog.WithParser(parser))
	}
	return opts, nil
}

var (
	chatOpts   chatFlags
	chatFormat string
)

var chatCmd = &cobra.Command{
	Use:   "chat [file|-]",
	Short: "Print the chat messages in a log",
	Long: `Print the chat messages found in a Minecraft client log.

Without a file argument the latest log in the Minecraft log directory is
used. The directory is taken from --log-dir, then the MCLOG_LOGDIR
environment variable, then the default launcher location. Use "-" to read
from standard input.

Examples:
  # Chat from the current session as JSON Lines
  mclog chat

  # Colored output from a specific file
  mclog chat --format pretty ~/.minecraft/logs/latest.log

  # Only what EDDIE said
  mclog chat --sources named --include-names EDDIE

  # Pipe to jq for filtering
  mclog chat | jq 'select(.source.kind == "emote")'`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLogFile,
	RunE:              runChat,
}

func init() {
	chatOpts.register(chatCmd)
	chatCmd.Flags().StringVarP(&chatFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty, text")
	_ = chatCmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"jsonl", "pretty", "text"}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(chatCmd)
}

func completeLogFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"log"}, cobra.ShellCompDirectiveFilterFileExt
}

func runChat(cmd *cobra.Command, args []string) error {
	if !ValidFormats[chatFormat] {
		return fmt.Errorf("unknown format: %s", chatFormat)
	}

	opts, err := chatOpts.parseOptions()
	if err != nil {
		return err
	}

	log, err := readLog(args, chatOpts.logDir, cmd.InOrStdin(), newLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for msg, err := range mclog.Parse(commandContext(cmd), log, opts...) {
		if err != nil {
			return err
		}
		if err := OutputMessage(chatFormat, msg, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}
