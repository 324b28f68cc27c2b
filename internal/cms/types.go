package cms

import (
	"encoding/json"
	"time"
)

// Document is a raw record as returned by the content store. The data payload
// is kept opaque here; the service layer normalizes it into typed shapes.
type Document struct {
	ID                   string          `json:"id"`
	UID                  string          `json:"uid"`
	Type                 string          `json:"type"`
	FirstPublicationDate *time.Time      `json:"first_publication_date"`
	LastPublicationDate  *time.Time      `json:"last_publication_date"`
	Data                 json.RawMessage `json:"data"`
}

// SearchResponse is one page of a documents search. NextPage is an absolute
// continuation URL, empty when the query is exhausted.
type SearchResponse struct {
	Page           int        `json:"page"`
	ResultsPerPage int        `json:"results_per_page"`
	TotalResults   int        `json:"total_results_size"`
	TotalPages     int        `json:"total_pages"`
	NextPage       string     `json:"next_page"`
	PrevPage       string     `json:"prev_page"`
	Results        []Document `json:"results"`
}

// Orderings accepted by the search endpoint.
const (
	OrderPublishedDesc = "document.first_publication_date desc"
	OrderPublishedAsc  = "document.first_publication_date"
)

// SearchOptions describes a bounded documents search. An empty Ref targets
// the published revision of every document.
type SearchOptions struct {
	Type            string
	UID             string
	PageSize        int
	OrderBy         string
	Ref             string
	PublishedBefore *time.Time
	PublishedAfter  *time.Time
}
