package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spacetraveling/internal/cms"
)

// ErrMalformedRecord marks a content-store record that violates the store
// contract: the identifier or the data payload itself is missing. Formatting
// gaps (absent subtitle, empty headings) are normalized instead.
var ErrMalformedRecord = errors.New("malformed content record")

// Post is the canonical internal representation of a blog post. Values are
// immutable after normalization and owned by the request that produced them.
type Post struct {
	ID               string
	Slug             string
	FirstPublishedAt *time.Time
	LastRevisedAt    *time.Time
	Title            string
	Subtitle         string
	Author           string
	BannerURL        string
	Content          []ContentBlock
}

// ContentBlock is one heading plus its body spans, in display order.
type ContentBlock struct {
	Heading string
	Body    []RichTextSpan
}

// RichTextSpan is a single rich-text node of a block body.
type RichTextSpan struct {
	Type string
	Text string
}

// PostSummary is the slug/title pair used for navigation links.
type PostSummary struct {
	Slug  string
	Title string
}

// postData mirrors the store's data payload for documents of type post.
// Every field is optional; absent values decode to zero values.
type postData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
	Banner   struct {
		URL string `json:"url"`
	} `json:"banner"`
	Content []struct {
		Heading string `json:"heading"`
		Body    []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"body"`
	} `json:"content"`
}

// NormalizePost maps a raw content-store document into a Post. Missing
// optional fields normalize to empty values; blocks are kept in document
// order, including blocks with no body spans.
func NormalizePost(doc cms.Document) (Post, error) {
	if strings.TrimSpace(doc.ID) == "" {
		return Post{}, fmt.Errorf("%w: document id is missing", ErrMalformedRecord)
	}
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return Post{}, fmt.Errorf("%w: document %s has no data payload", ErrMalformedRecord, doc.ID)
	}

	var data postData
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return Post{}, fmt.Errorf("%w: document %s data payload: %v", ErrMalformedRecord, doc.ID, err)
	}

	blocks := make([]ContentBlock, 0, len(data.Content))
	for _, raw := range data.Content {
		block := ContentBlock{
			Heading: raw.Heading,
			Body:    make([]RichTextSpan, 0, len(raw.Body)),
		}
		for _, span := range raw.Body {
			block.Body = append(block.Body, RichTextSpan{Type: span.Type, Text: span.Text})
		}
		blocks = append(blocks, block)
	}

	return Post{
		ID:               doc.ID,
		Slug:             doc.UID,
		FirstPublishedAt: doc.FirstPublicationDate,
		LastRevisedAt:    doc.LastPublicationDate,
		Title:            data.Title,
		Subtitle:         data.Subtitle,
		Author:           data.Author,
		BannerURL:        data.Banner.URL,
		Content:          blocks,
	}, nil
}

// Summary returns the navigation summary for the post.
func (p Post) Summary() PostSummary {
	return PostSummary{Slug: p.Slug, Title: p.Title}
}
