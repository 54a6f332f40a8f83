package widget

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders reply markdown for the chat page. Raw HTML stays escaped
// since replies interpolate user text.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts reply markdown to HTML. On a render failure it
// returns the input unchanged so the page still shows something.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		log.Printf("widget: markdown render: %v", err)
		return source
	}
	return buf.String()
}
