package mclog_test

import (
	"context"
	"fmt"
	"log"

	"github.com/corviraptor/mclog-go/pkg/mclog"
)

const exampleLog = `[19:08:12] [Render thread/INFO]: [CHAT] * Abigail pockets the lantern
[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> holy fuck youre a pixel
[19:09:02] [Render thread/INFO]: [System] [CHAT] Set own game mode to Spectator Mode
[19:13:11] [Render thread/WARN]: Received passengers for unknown entity
`

func ExampleExtractChatMessages() {
	for _, msg := range mclog.ExtractChatMessages(exampleLog) {
		switch msg.Source.Kind {
		case mclog.SourceNamed:
			fmt.Printf("[%s] <%s> %s\n", msg.Time, msg.Source.Name, msg.Message)
		case mclog.SourceEmote:
			fmt.Printf("[%s] * %s\n", msg.Time, msg.Message)
		case mclog.SourceSystem:
			fmt.Printf("[%s] %s\n", msg.Time, msg.Message)
		}
	}
	// Output:
	// [19:08:12] * Abigail pockets the lantern
	// [19:08:21] <EDDIE> holy fuck youre a pixel
	// [19:09:02] Set own game mode to Spectator Mode
}

func ExampleExtractInfoLines() {
	for _, info := range mclog.ExtractInfoLines(exampleLog) {
		fmt.Println(info.Time, "|", info.Content)
	}
	// Output:
	// 19:08:12 | [CHAT] * Abigail pockets the lantern
	// 19:08:21 | [CHAT] <EDDIE> holy fuck youre a pixel
	// 19:09:02 | [System] [CHAT] Set own game mode to Spectator Mode
}

func ExampleParseAll() {
	msgs, err := mclog.ParseAll(context.Background(), exampleLog,
		mclog.WithExcludeSources(mclog.SourceSystem),
		mclog.WithIncludeNames("EDDIE"),
	)
	if err != nil {
		log.Fatal(err)
	}
	for _, msg := range msgs {
		fmt.Println(msg.Source, msg.Message)
	}
	// Output:
	// emote Abigail pockets the lantern
	// named:EDDIE holy fuck youre a pixel
}

func ExampleParseLine() {
	msg, ok := mclog.ParseLine("[19:08:21] [Render thread/INFO]: [CHAT] <EDDIE> hello")
	fmt.Println(ok, msg.Source.Name, msg.Message)

	_, ok = mclog.ParseLine("[19:14:03] [Render thread/INFO]: [CHAT] [Debug]: Hitboxes: shown")
	fmt.Println(ok)
	// Output:
	// true EDDIE hello
	// false
}
