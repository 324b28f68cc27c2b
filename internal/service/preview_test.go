package service

import "testing"

func TestResolveRevision(t *testing.T) {
	tests := []struct {
		name    string
		preview PreviewContext
		wantRef string
	}{
		{
			name:    "inactive context ignores any token",
			preview: PreviewContext{Active: false, Ref: "draft-123"},
			wantRef: "",
		},
		{
			name:    "inactive context without token",
			preview: PreviewContext{},
			wantRef: "",
		},
		{
			name:    "active context forwards ref verbatim",
			preview: PreviewContext{Active: true, Ref: "rev-staged"},
			wantRef: "rev-staged",
		},
		{
			name:    "active context without ref falls back to published",
			preview: PreviewContext{Active: true},
			wantRef: "",
		},
		{
			name:    "active context with blank ref falls back to published",
			preview: PreviewContext{Active: true, Ref: "   "},
			wantRef: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ResolveRevision("hello-world", tt.preview)
			if params.Slug != "hello-world" {
				t.Fatalf("slug must pass through unchanged, got %q", params.Slug)
			}
			if params.Ref != tt.wantRef {
				t.Fatalf("ResolveRevision ref = %q, want %q", params.Ref, tt.wantRef)
			}
		})
	}
}
