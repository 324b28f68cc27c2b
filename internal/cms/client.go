// Package cms is the HTTP client for the headless content store holding the
// blog's post documents and revisions.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrDocumentNotFound is returned when no document matches a single-record
// fetch. Callers map it to their own not-found semantics.
var ErrDocumentNotFound = errors.New("document not found")

// Client talks to the content store's documents API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a content store client. baseURL points at the store's
// API root, token is the access token issued by the store.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SearchDocuments runs a bounded documents search against the store.
func (c *Client) SearchDocuments(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	query := searchValues(opts)
	return c.search(ctx, c.baseURL+"/documents/search?"+query.Encode())
}

// SearchPage follows a continuation URL returned in a previous response's
// next_page field. The URL is opaque to callers; the store decides where a
// page boundary falls.
func (c *Client) SearchPage(ctx context.Context, pageURL string) (*SearchResponse, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, fmt.Errorf("continuation url is empty")
	}
	return c.search(ctx, pageURL)
}

// GetByUID fetches a single document of the given type by its UID. An empty
// ref targets the published revision; a non-empty ref selects the matching
// draft or staged revision.
func (c *Client) GetByUID(ctx context.Context, docType, uid, ref string) (*Document, error) {
	resp, err := c.SearchDocuments(ctx, SearchOptions{
		Type:     docType,
		UID:      uid,
		PageSize: 1,
		Ref:      ref,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrDocumentNotFound
	}
	return &resp.Results[0], nil
}

func (c *Client) search(ctx context.Context, rawURL string) (*SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var page SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}

func searchValues(opts SearchOptions) url.Values {
	values := url.Values{}

	predicates := make([]string, 0, 4)
	if opts.Type != "" {
		predicates = append(predicates, fmt.Sprintf("[at(document.type,%q)]", opts.Type))
	}
	if opts.UID != "" {
		predicates = append(predicates, fmt.Sprintf("[at(my.%s.uid,%q)]", opts.Type, opts.UID))
	}
	if opts.PublishedBefore != nil {
		predicates = append(predicates, fmt.Sprintf("[date.before(document.first_publication_date,%d)]", opts.PublishedBefore.UnixMilli()))
	}
	if opts.PublishedAfter != nil {
		predicates = append(predicates, fmt.Sprintf("[date.after(document.first_publication_date,%d)]", opts.PublishedAfter.UnixMilli()))
	}
	if len(predicates) > 0 {
		values.Set("q", "["+strings.Join(predicates, "")+"]")
	}

	if opts.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.OrderBy != "" {
		values.Set("orderings", "["+opts.OrderBy+"]")
	}
	if opts.Ref != "" {
		values.Set("ref", opts.Ref)
	}

	return values
}
