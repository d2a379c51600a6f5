// Package parser provides Minecraft client log line parsing.
package parser

import (
	"iter"
	"strings"
	"unicode"

	"github.com/corviraptor/mclog-go/pkg/mclog/chat"
)

// Parse parses a single log line into a chat message.
//
// Returns:
//   - (Message, true): the line is a Render thread INFO chat line
//   - (zero, false): anything else
func Parse(line string) (chat.Message, bool) {
	info, ok := ParseInfoLine(line)
	if !ok {
		return chat.Message{}, false
	}
	return Classify(info)
}

// ParseInfoLine splits a Render thread INFO line into its timestamp and content.
// A trailing line terminator (LF or CRLF) is not part of the content.
func ParseInfoLine(line string) (chat.InfoLine, bool) {
	line = strings.TrimSuffix(line, "\n")
	// Trim trailing CR for Windows CRLF compatibility
	line = strings.TrimSuffix(line, "\r")

	// Quick exclusion check
	if !strings.Contains(line, channelMarker) {
		return chat.InfoLine{}, false
	}

	match := infoLinePattern.FindStringSubmatch(line)
	if match == nil {
		return chat.InfoLine{}, false
	}
	return chat.InfoLine{Time: match[1], Content: match[2]}, true
}

// InfoLines yields every info line of log, top to bottom.
func InfoLines(log string) iter.Seq[chat.InfoLine] {
	return func(yield func(chat.InfoLine) bool) {
		for line := range strings.Lines(log) {
			info, ok := ParseInfoLine(line)
			if !ok {
				continue
			}
			if !yield(info) {
				return
			}
		}
	}
}

// Classify turns an info line into a chat message.
// The first matching shape wins: system, then emote, then named.
func Classify(info chat.InfoLine) (chat.Message, bool) {
	if msg, ok := parseSystem(info); ok {
		return msg, true
	}
	return parseChat(info)
}

func parseSystem(info chat.InfoLine) (chat.Message, bool) {
	body, ok := strings.CutPrefix(info.Content, systemChatPrefix)
	if !ok {
		return chat.Message{}, false
	}
	return chat.Message{
		Time:    info.Time,
		Message: body,
		Source:  chat.System(),
	}, true
}

func parseChat(info chat.InfoLine) (chat.Message, bool) {
	rest, ok := strings.CutPrefix(info.Content, chatPrefix)
	if !ok {
		return chat.Message{}, false
	}

	// "* Name does something"
	if body, ok := strings.CutPrefix(rest, emotePrefix); ok {
		return chat.Message{
			Time:    info.Time,
			Message: body,
			Source:  chat.Emote(),
		}, true
	}

	return parseNamed(info.Time, rest)
}

// parseNamed handles "<Name> message". Only leading whitespace of the
// message is dropped.
func parseNamed(ts, rest string) (chat.Message, bool) {
	rest, ok := strings.CutPrefix(rest, nameOpen)
	if !ok {
		return chat.Message{}, false
	}
	name, body, ok := strings.Cut(rest, nameClose)
	if !ok {
		return chat.Message{}, false
	}
	return chat.Message{
		Time:    ts,
		Message: strings.TrimLeftFunc(body, unicode.IsSpace),
		Source:  chat.Named(name),
	}, true
}
