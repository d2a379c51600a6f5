package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/corviraptor/mclog-go/pkg/mclog"
	"github.com/spf13/cobra"
)

var viewOpts chatFlags

var viewCmd = &cobra.Command{
	Use:   "view [file|-]",
	Short: "Browse the chat of a log interactively",
	Long: `Open a scrollable viewer over the chat messages of a Minecraft client log.

Keys: arrows, pgup/pgdn and mouse wheel scroll; g/G jump to top/bottom;
q, esc or ctrl+c quit.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLogFile,
	RunE:              runView,
}

func init() {
	viewOpts.register(viewCmd)
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	opts, err := viewOpts.parseOptions()
	if err != nil {
		return err
	}
	log, err := readLog(args, viewOpts.logDir, cmd.InOrStdin(), newLogger())
	if err != nil {
		return err
	}
	msgs, err := mclog.ParseAll(commandContext(cmd), log, opts...)
	if err != nil {
		return err
	}

	title := "latest log"
	if len(args) > 0 && args[0] != stdinArg {
		title = args[0]
	}

	p := tea.NewProgram(newViewModel(title, msgs),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(commandContext(cmd)),
	)
	_, err = p.Run()
	return err
}

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleFooter = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// viewModel is the bubbletea model of the chat viewer.
type viewModel struct {
	title    string
	lines    []string
	viewport viewport.Model
	ready    bool
}

func newViewModel(title string, msgs []mclog.ChatMessage) viewModel {
	lines := make([]string, len(msgs))
	for i, msg := range msgs {
		lines[i] = prettyLine(msg)
	}
	return viewModel{title: title, lines: lines}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		height := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(m.content())
			m.viewport.GotoBottom()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m viewModel) content() string {
	if len(m.lines) == 0 {
		return styleFooter.Render("no chat messages")
	}
	return strings.Join(m.lines, "\n")
}

func (m viewModel) headerView() string {
	return styleHeader.Render(fmt.Sprintf("%s  (%d messages)", m.title, len(m.lines)))
}

func (m viewModel) footerView() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return styleFooter.Render(fmt.Sprintf("%3.f%%  q: quit", percent))
}
