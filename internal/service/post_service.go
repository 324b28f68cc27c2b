package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacetraveling/internal/cms"
)

// ErrPostNotFound is returned when the store has no post for the requested
// slug and revision.
var ErrPostNotFound = errors.New("post not found")

// postType is the content-store document type holding blog posts.
const postType = "post"

// ContentClient is the slice of the content-store client the post service
// uses. The production implementation is *cms.Client.
type ContentClient interface {
	SearchDocuments(ctx context.Context, opts cms.SearchOptions) (*cms.SearchResponse, error)
	SearchPage(ctx context.Context, pageURL string) (*cms.SearchResponse, error)
	GetByUID(ctx context.Context, docType, uid, ref string) (*cms.Document, error)
}

// PostService aggregates content-store reads into normalized posts,
// pagination cursors and navigation results. It holds no mutable state; every
// call is resolved against the store's current state.
type PostService struct {
	client   ContentClient
	pageSize int
}

// NewPostService creates a PostService. pageSize bounds every index query.
func NewPostService(client ContentClient, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &PostService{client: client, pageSize: pageSize}
}

// GetPost fetches and normalizes a single post, honoring the preview context
// when selecting the revision.
func (s *PostService) GetPost(ctx context.Context, slug string, preview PreviewContext) (Post, error) {
	params := ResolveRevision(slug, preview)

	doc, err := s.client.GetByUID(ctx, postType, params.Slug, params.Ref)
	if err != nil {
		if errors.Is(err, cms.ErrDocumentNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("fetch post %q: %w", slug, err)
	}

	return NormalizePost(*doc)
}

func normalizeAll(docs []cms.Document) ([]Post, error) {
	posts := make([]Post, 0, len(docs))
	for _, doc := range docs {
		post, err := NormalizePost(doc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}
