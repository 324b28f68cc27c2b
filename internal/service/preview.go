package service

import "strings"

// PreviewContext carries the editorial preview state for a single request.
// It is built fresh per request and never persisted or merged across
// requests.
type PreviewContext struct {
	Active bool
	Ref    string
}

// FetchParams are the content-store fetch parameters selected for a single
// post read. An empty Ref targets the published revision.
type FetchParams struct {
	Slug string
	Ref  string
}

// ResolveRevision selects the revision a single-post fetch should target.
// Without an active preview context the published revision is used no matter
// what token is present; an active context without a ref falls back to the
// published revision rather than to "most recent draft".
func ResolveRevision(slug string, preview PreviewContext) FetchParams {
	return FetchParams{Slug: slug, Ref: preview.revisionRef()}
}

// revisionRef is the ref queries should pass to the store for this context.
func (p PreviewContext) revisionRef() string {
	if !p.Active {
		return ""
	}
	return strings.TrimSpace(p.Ref)
}
