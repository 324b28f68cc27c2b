package view

import (
	"strings"
	"testing"

	"github.com/spacetraveling/internal/service"
)

func TestRenderBlocksParagraphs(t *testing.T) {
	blocks := []service.ContentBlock{
		{
			Heading: "Intro",
			Body: []service.RichTextSpan{
				{Type: "paragraph", Text: "Plain text with **bold** emphasis."},
			},
		},
	}

	rendered, err := RenderBlocks(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 1 {
		t.Fatalf("expected one rendered block, got %d", len(rendered))
	}
	if rendered[0].Heading != "Intro" {
		t.Fatalf("unexpected heading %q", rendered[0].Heading)
	}
	body := string(rendered[0].Body)
	if !strings.Contains(body, "<strong>bold</strong>") {
		t.Fatalf("expected inline markdown to be rendered, got %q", body)
	}
}

func TestRenderBlocksStripsUnsafeMarkup(t *testing.T) {
	blocks := []service.ContentBlock{
		{
			Body: []service.RichTextSpan{
				{Type: "paragraph", Text: `hello <script>alert("x")</script> world`},
			},
		},
	}

	rendered, err := RenderBlocks(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(rendered[0].Body)
	if strings.Contains(body, "<script>") {
		t.Fatalf("script tags must be sanitized away, got %q", body)
	}
	if !strings.Contains(body, "hello") || !strings.Contains(body, "world") {
		t.Fatalf("surrounding text must survive sanitization, got %q", body)
	}
}

func TestRenderBlocksPreformattedEscaped(t *testing.T) {
	blocks := []service.ContentBlock{
		{
			Body: []service.RichTextSpan{
				{Type: "preformatted", Text: "if a < b { return }"},
			},
		},
	}

	rendered, err := RenderBlocks(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(rendered[0].Body)
	if !strings.Contains(body, "<pre>") {
		t.Fatalf("expected a pre block, got %q", body)
	}
	if !strings.Contains(body, "&lt; b") {
		t.Fatalf("expected code to be escaped, got %q", body)
	}
}

func TestRenderBlocksKeepsEmptyBlocks(t *testing.T) {
	blocks := []service.ContentBlock{
		{Heading: "First", Body: nil},
		{Heading: "Second", Body: []service.RichTextSpan{{Type: "paragraph", Text: "text"}}},
	}

	rendered, err := RenderBlocks(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rendered) != 2 || rendered[0].Heading != "First" || rendered[1].Heading != "Second" {
		t.Fatalf("block order must be preserved, got %+v", rendered)
	}
	if string(rendered[0].Body) != "" {
		t.Fatalf("empty block must render to empty body, got %q", rendered[0].Body)
	}
}
