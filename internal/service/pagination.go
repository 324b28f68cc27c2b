package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spacetraveling/internal/cms"
)

// ErrInvalidCursor is returned when NextPage is invoked with an absent or
// garbled cursor. Exhaustion is signaled by FirstPage/NextPage returning a nil
// cursor, never by this error.
var ErrInvalidCursor = errors.New("invalid pagination cursor")

// Cursor resumes a paginated index query. It wraps the store's opaque
// continuation token plus the page index that token produces; callers never
// parse or construct tokens themselves. Two cursors with the same underlying
// state are interchangeable.
type Cursor struct {
	nextPage string
	page     int
}

// Page is the index of the page this cursor will produce.
func (c *Cursor) Page() int {
	return c.page
}

// cursorPayload is the wire shape of an encoded cursor.
type cursorPayload struct {
	NextPage string `json:"next_page"`
	Page     int    `json:"page"`
}

// Encode serializes the cursor for an HTTP round trip (the "load more" link).
func (c *Cursor) Encode() string {
	payload, err := json.Marshal(cursorPayload{NextPage: c.nextPage, Page: c.page})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(payload)
}

// DecodeCursor reverses Encode. Anything that does not round-trip to a usable
// continuation token yields ErrInvalidCursor.
func DecodeCursor(raw string) (*Cursor, error) {
	if raw == "" {
		return nil, ErrInvalidCursor
	}
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var payload cursorPayload
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if payload.NextPage == "" {
		return nil, ErrInvalidCursor
	}
	return &Cursor{nextPage: payload.NextPage, page: payload.Page}, nil
}

// FirstPage issues the initial bounded index query, most recent first. The
// returned cursor is nil when the store has no further pages. The preview
// context's ref is honored so editors see staged posts on the index too.
func (s *PostService) FirstPage(ctx context.Context, preview PreviewContext) ([]Post, *Cursor, error) {
	resp, err := s.client.SearchDocuments(ctx, cms.SearchOptions{
		Type:     postType,
		PageSize: s.pageSize,
		OrderBy:  cms.OrderPublishedDesc,
		Ref:      preview.revisionRef(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("query first page: %w", err)
	}

	posts, err := normalizeAll(resp.Results)
	if err != nil {
		return nil, nil, err
	}

	return posts, cursorFrom(resp), nil
}

// NextPage consumes a cursor and returns the following page plus its
// replacement cursor. Results arrive in store order and are never re-sorted
// or deduplicated here; a window shift in the store between calls can repeat
// a record, which is passed through as-is. Callers must serialize calls on
// the same cursor chain.
func (s *PostService) NextPage(ctx context.Context, cursor *Cursor) ([]Post, *Cursor, error) {
	if cursor == nil || cursor.nextPage == "" {
		return nil, nil, ErrInvalidCursor
	}

	resp, err := s.client.SearchPage(ctx, cursor.nextPage)
	if err != nil {
		return nil, nil, fmt.Errorf("query page %d: %w", cursor.page, err)
	}

	posts, err := normalizeAll(resp.Results)
	if err != nil {
		return nil, nil, err
	}

	return posts, cursorFrom(resp), nil
}

func cursorFrom(resp *cms.SearchResponse) *Cursor {
	if resp.NextPage == "" {
		return nil
	}
	return &Cursor{nextPage: resp.NextPage, page: resp.Page + 1}
}
