package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/corviraptor/mclog-go/pkg/mclog"
)

// ValidFormats lists all valid output formats for chat messages.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
	"text":   true,
}

// ValidLineFormats lists all valid output formats for info lines.
var ValidLineFormats = map[string]bool{
	"jsonl": true,
	"text":  true,
}

var (
	styleTime   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleName   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	styleEmote  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Italic(true) // pink
	styleSystem = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))              // yellow
)

// OutputMessage writes a chat message in the specified format to the writer.
func OutputMessage(format string, msg mclog.ChatMessage, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(msg, out)
	case "pretty":
		return OutputPretty(msg, out)
	case "text":
		return OutputText(msg, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputInfoLine writes an info line in the specified format to the writer.
func OutputInfoLine(format string, line mclog.InfoLine, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(line, out)
	case "text":
		_, err := fmt.Fprintf(out, "[%s] %s\n", line.Time, line.Content)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes v as a single JSON line.
func OutputJSON(v any, out io.Writer) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputText writes a chat message the way the game chat shows it, without color.
func OutputText(msg mclog.ChatMessage, out io.Writer) error {
	_, err := fmt.Fprintf(out, "[%s] %s\n", msg.Time, textBody(msg))
	return err
}

// OutputPretty writes a chat message with per-source colors.
func OutputPretty(msg mclog.ChatMessage, out io.Writer) error {
	_, err := fmt.Fprintln(out, prettyLine(msg))
	return err
}

func textBody(msg mclog.ChatMessage) string {
	switch msg.Source.Kind {
	case mclog.SourceNamed:
		return fmt.Sprintf("<%s> %s", msg.Source.Name, msg.Message)
	case mclog.SourceEmote:
		return "* " + msg.Message
	case mclog.SourceSystem:
		return "[System] " + msg.Message
	default:
		return msg.Message
	}
}

// prettyLine renders one message for terminal display.
func prettyLine(msg mclog.ChatMessage) string {
	ts := styleTime.Render(msg.Time)

	switch msg.Source.Kind {
	case mclog.SourceNamed:
		return fmt.Sprintf("%s %s %s", ts, styleName.Render("<"+msg.Source.Name+">"), msg.Message)
	case mclog.SourceEmote:
		return fmt.Sprintf("%s %s", ts, styleEmote.Render("* "+msg.Message))
	case mclog.SourceSystem:
		return fmt.Sprintf("%s %s", ts, styleSystem.Render(msg.Message))
	default:
		return fmt.Sprintf("%s %s", ts, msg.Message)
	}
}
