// Package view turns normalized post content into markup safe for templates.
package view

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/spacetraveling/internal/service"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderedBlock is one content block ready for template insertion. Body is
// sanitized before it is marked as trusted HTML.
type RenderedBlock struct {
	Heading string
	Body    template.HTML
}

// RenderBlocks converts normalized content blocks into sanitized HTML,
// preserving block order. Paragraph spans may carry inline markdown;
// preformatted spans are escaped verbatim.
func RenderBlocks(blocks []service.ContentBlock) ([]RenderedBlock, error) {
	rendered := make([]RenderedBlock, 0, len(blocks))
	for _, block := range blocks {
		var buf bytes.Buffer
		for _, span := range block.Body {
			switch span.Type {
			case "preformatted":
				buf.WriteString("<pre>")
				buf.WriteString(html.EscapeString(span.Text))
				buf.WriteString("</pre>")
			default:
				if err := markdownEngine.Convert([]byte(span.Text), &buf); err != nil {
					return nil, fmt.Errorf("render block %q: %w", block.Heading, err)
				}
			}
		}

		rendered = append(rendered, RenderedBlock{
			Heading: block.Heading,
			Body:    template.HTML(sanitizer.SanitizeBytes(buf.Bytes())),
		})
	}
	return rendered, nil
}
