// Package chat defines the records produced by the mclog parsers.
package chat

// Kind identifies who a chat message came from.
type Kind string

// Chat source kinds.
const (
	// KindNamed is a message typed by an identified player ("<Name> text").
	KindNamed Kind = "named"
	// KindEmote is a third-person action message ("* Name does something").
	KindEmote Kind = "emote"
	// KindSystem is a server or client generated chat line.
	KindSystem Kind = "system"
)

// Kinds returns all source kinds in classification order.
func Kinds() []Kind {
	return []Kind{KindSystem, KindEmote, KindNamed}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindNamed, KindEmote, KindSystem:
		return true
	}
	return false
}

// Source is the sender of a Message. Name is only set for KindNamed.
type Source struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name,omitempty"`
}

// Named returns the source of a message sent by the player name.
func Named(name string) Source {
	return Source{Kind: KindNamed, Name: name}
}

// Emote returns the source of an emote message.
func Emote() Source {
	return Source{Kind: KindEmote}
}

// System returns the source of a system message.
func System() Source {
	return Source{Kind: KindSystem}
}

// String returns the kind, or "named:<name>" for named sources.
func (s Source) String() string {
	if s.Kind == KindNamed {
		return string(s.Kind) + ":" + s.Name
	}
	return string(s.Kind)
}

// InfoLine is a log line emitted on the Render thread INFO channel.
type InfoLine struct {
	// Time is the bracketed timestamp text, unparsed.
	Time string `json:"time"`
	// Content is everything after the channel marker.
	Content string `json:"content"`
}

// Message is a classified chat line.
type Message struct {
	// Time is copied unchanged from the source InfoLine.
	Time string `json:"time"`

	// Message is the chat body with the channel and sender prefixes removed.
	Message string `json:"message"`

	// Source identifies the sender.
	Source Source `json:"source"`

	// RawLine is the original log line (only if requested).
	RawLine string `json:"raw_line,omitempty"`
}
