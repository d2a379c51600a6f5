package parser

import "regexp"

// channelMarker is the literal that every info line carries.
// Checked with strings.Contains before running the regex.
const channelMarker = "[Render thread/INFO]:"

// Matches: "[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hello"
// Captures: (1) timestamp text, (2) content after the marker and its space
var infoLinePattern = regexp.MustCompile(`\[(.*?)\] \[Render thread/INFO\]: (.*)`)

// Chat prefixes, checked in this order against the info line content.
const (
	systemChatPrefix = "[System] [CHAT] "
	chatPrefix       = "[CHAT] "
	emotePrefix      = "* "
	nameOpen         = "<"
	nameClose        = ">"
)
