package main

import (
	"fmt"

	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/spf13/cobra"
)

var (
	linesLogDir string
	linesFormat string
)

var linesCmd = &cobra.Command{
	Use:   "lines [file|-]",
	Short: "Print the Render thread INFO lines in a log",
	Long: `Print every Render thread INFO line of a Minecraft client log as a
time and content pair, before any chat classification.

Useful for writing custom chat patterns: the regex in a pattern file is
matched against the content field shown here.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLogFile,
	RunE:              runLines,
}

func init() {
	linesCmd.Flags().StringVarP(&linesLogDir, "log-dir", "d", "",
		"Minecraft log directory (auto-detected if not specified)")
	linesCmd.Flags().StringVarP(&linesFormat, "format", "f", "jsonl",
		"Output format: jsonl, text")
	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	if !ValidLineFormats[linesFormat] {
		return fmt.Errorf("unknown format: %s", linesFormat)
	}

	log, err := readLog(args, linesLogDir, cmd.InOrStdin(), newLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for line := range mclog.InfoLines(log) {
		if err := OutputInfoLine(linesFormat, line, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}
