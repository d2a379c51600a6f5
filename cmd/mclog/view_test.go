package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/corviraptor/mclog-go/pkg/mclog"
)

func sizedViewModel(t *testing.T, msgs []mclog.ChatMessage) viewModel {
	t.Helper()
	m := newViewModel("latest.log", msgs)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return updated.(viewModel)
}

func TestViewModel_Initializing(t *testing.T) {
	m := newViewModel("latest.log", nil)
	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("View() before resize = %q", got)
	}
}

func TestViewModel_RendersMessages(t *testing.T) {
	m := sizedViewModel(t, []mclog.ChatMessage{emoteMsg, namedMsg, systemMsg})

	view := m.View()
	for _, want := range []string{
		"latest.log",
		"(3 messages)",
		"<EDDIE>",
		"holy fuck youre a pixel",
		"Abigail pockets the lantern...",
		"Set own game mode to Spectator Mode",
		"q: quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestViewModel_Empty(t *testing.T) {
	m := sizedViewModel(t, nil)
	if view := m.View(); !strings.Contains(view, "no chat messages") {
		t.Errorf("View() = %q, want empty notice", view)
	}
}

func TestViewModel_StartsAtBottom(t *testing.T) {
	msgs := make([]mclog.ChatMessage, 100)
	for i := range msgs {
		msgs[i] = systemMsg
	}
	msgs[99] = namedMsg

	m := sizedViewModel(t, msgs)
	if !m.viewport.AtBottom() {
		t.Error("viewport should start at the bottom")
	}
	if !strings.Contains(m.View(), "<EDDIE>") {
		t.Error("last message should be visible")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = updated.(viewModel)
	if !m.viewport.AtTop() {
		t.Error("g should jump to the top")
	}
}

func TestViewModel_Quit(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	m := sizedViewModel(t, []mclog.ChatMessage{namedMsg})
	for _, key := range keys {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%v) returned nil cmd", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%v) did not quit", key)
		}
	}
}
