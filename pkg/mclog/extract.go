package mclog

import (
	"iter"

	"github.com/corviraptor/mclog-go/internal/parser"
)

// ExtractInfoLines returns every Render thread INFO line of log, in log order.
// Lines on other threads or channels are skipped. An empty result is not an error.
func ExtractInfoLines(log string) []InfoLine {
	lines := []InfoLine{}
	for info := range parser.InfoLines(log) {
		lines = append(lines, info)
	}
	return lines
}

// InfoLineToChatMessage classifies an info line as a chat message.
// The second return value is false when the content is not chat.
func InfoLineToChatMessage(line InfoLine) (ChatMessage, bool) {
	return parser.Classify(line)
}

// ExtractChatMessages returns every chat message in log, in log order.
// It is ExtractInfoLines followed by InfoLineToChatMessage, with non-chat
// lines dropped.
func ExtractChatMessages(log string) []ChatMessage {
	msgs := []ChatMessage{}
	for msg := range ChatMessages(log) {
		msgs = append(msgs, msg)
	}
	return msgs
}

// InfoLines is the lazy form of ExtractInfoLines.
func InfoLines(log string) iter.Seq[InfoLine] {
	return parser.InfoLines(log)
}

// ChatMessages is the lazy form of ExtractChatMessages.
// No intermediate slice of info lines is built.
func ChatMessages(log string) iter.Seq[ChatMessage] {
	return func(yield func(ChatMessage) bool) {
		for info := range parser.InfoLines(log) {
			msg, ok := parser.Classify(info)
			if !ok {
				continue
			}
			if !yield(msg) {
				return
			}
		}
	}
}
