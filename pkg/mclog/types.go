package mclog

import "github.com/corviraptor/mclog-go/pkg/mclog/chat"

// Re-exported types from the chat package, so most callers only need mclog.
type (
	// InfoLine is a Render thread INFO log line split into time and content.
	InfoLine = chat.InfoLine
	// ChatMessage is a classified chat line.
	ChatMessage = chat.Message
	// Source identifies the sender of a ChatMessage.
	Source = chat.Source
	// SourceKind is the variant of a Source.
	SourceKind = chat.Kind
)

// Source kinds.
const (
	SourceNamed  = chat.KindNamed
	SourceEmote  = chat.KindEmote
	SourceSystem = chat.KindSystem
)
