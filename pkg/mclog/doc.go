// Package mclog extracts chat messages from Minecraft client logs.
//
// Only lines on the Render thread INFO channel are considered:
//
//	[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> holy fuck youre a pixel
//
// Each such line becomes an [InfoLine] (timestamp text and content), and
// info lines whose content has one of the chat shapes become a
// [ChatMessage]:
//
//	[System] [CHAT] text   -> SourceSystem
//	[CHAT] * text          -> SourceEmote
//	[CHAT] <Name> text     -> SourceNamed, Source.Name = "Name"
//
// Anything else is dropped silently. Extraction never fails.
//
// # Basic Usage
//
// The caller supplies the whole log text:
//
//	data, err := os.ReadFile("logs/latest.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range mclog.ExtractChatMessages(string(data)) {
//	    fmt.Println(msg.Time, msg.Source, msg.Message)
//	}
//
// [ChatMessages] and [InfoLines] are lazy iterators over the same sequences.
//
// # Filtering and Custom Parsers
//
// [Parse] and [ParseAll] accept options for source and player name
// filters ([Settings] can be loaded from YAML) and for plugging in
// additional [Parser] implementations:
//
//	msgs, err := mclog.ParseAll(ctx, text,
//	    mclog.WithExcludeSources(mclog.SourceSystem),
//	    mclog.WithParsers(customParser, mclog.DefaultParser{}),
//	)
//
// For regex chat shapes defined in YAML, see the [pattern] subpackage.
//
// Timestamps are kept as the text found in the log; no time zone or
// date handling is done.
package mclog
