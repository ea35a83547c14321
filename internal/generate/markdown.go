package generate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in markdown is kept; rich-text content is trusted input.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderMarkdownProps fills props.html from props.markdown. Props that
// already carry html, or carry no markdown, are returned unchanged.
func renderMarkdownProps(props json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(props)) == 0 || !gjson.ValidBytes(props) {
		return props, nil
	}

	parsed := gjson.ParseBytes(props)
	if !parsed.IsObject() || parsed.Get("html").Exists() {
		return props, nil
	}

	md := parsed.Get("markdown")
	if md.Type != gjson.String {
		return props, nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md.Str), &buf); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	out, err := sjson.SetBytes(props, "html", buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to set html: %w", err)
	}
	return out, nil
}
