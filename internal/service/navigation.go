package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spacetraveling/internal/cms"
)

// NavigationResult holds the chronological neighbors of a post among
// published posts. A nil entry means no neighbor exists, which is a normal
// terminal state. Results are computed fresh per request and reflect live
// store ordering.
type NavigationResult struct {
	Previous *PostSummary
	Next     *PostSummary
}

// ResolveNavigation determines the posts published immediately before and
// after publishedAt. Both lookups use strict date bounds against the
// published revision, so drafts and the current post never appear; a post
// sharing the exact publication timestamp is neither previous nor next.
func (s *PostService) ResolveNavigation(ctx context.Context, postID string, publishedAt time.Time) (NavigationResult, error) {
	previous, err := s.neighbor(ctx, postID, cms.SearchOptions{
		Type:            postType,
		PageSize:        1,
		OrderBy:         cms.OrderPublishedDesc,
		PublishedBefore: &publishedAt,
	})
	if err != nil {
		return NavigationResult{}, fmt.Errorf("resolve previous post: %w", err)
	}

	next, err := s.neighbor(ctx, postID, cms.SearchOptions{
		Type:           postType,
		PageSize:       1,
		OrderBy:        cms.OrderPublishedAsc,
		PublishedAfter: &publishedAt,
	})
	if err != nil {
		return NavigationResult{}, fmt.Errorf("resolve next post: %w", err)
	}

	return NavigationResult{Previous: previous, Next: next}, nil
}

func (s *PostService) neighbor(ctx context.Context, excludeID string, opts cms.SearchOptions) (*PostSummary, error) {
	resp, err := s.client.SearchDocuments(ctx, opts)
	if err != nil {
		return nil, err
	}

	for _, doc := range resp.Results {
		if doc.ID == excludeID || doc.FirstPublicationDate == nil {
			continue
		}
		post, err := NormalizePost(doc)
		if err != nil {
			return nil, err
		}
		summary := post.Summary()
		return &summary, nil
	}

	return nil, nil
}
