package portfolio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCollection(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write collection file: %v", err)
	}
	return NewStore(path)
}

func TestLoadCollection(t *testing.T) {
	s := writeCollection(t, `[
		{"id": "first", "title": "First", "description": "d", "content": "c",
		 "publishDate": "2026-01-01T00:00:00Z", "tags": ["go"],
		 "readTime": 3, "status": "published"},
		{"id": "second", "title": "Second", "description": "d", "content": "c",
		 "publishDate": "2026-02-01", "status": "draft", "readTime": 1}
	]`)

	posts, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "first" || posts[0].ReadTime != 3 {
		t.Errorf("first post not decoded as expected: %+v", posts[0])
	}
	if !posts[0].Published() {
		t.Errorf("expected first post to be published")
	}
	if posts[1].Published() {
		t.Errorf("expected second post to be a draft")
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := s.Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	s := writeCollection(t, `{"not": "a list"`)

	_, err := s.Load(context.Background())
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError for invalid JSON, got %v", err)
	}
}

func TestLoadCancelledContext(t *testing.T) {
	s := writeCollection(t, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped context.Canceled, got %v", err)
	}
}

func TestLoadNormalizesDefaults(t *testing.T) {
	s := writeCollection(t, `[
		{"id": "bare", "title": "Bare", "description": "d",
		 "content": "just a few words here"}
	]`)

	posts, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := posts[0]
	if p.Status != StatusDraft {
		t.Errorf("expected missing status to default to draft, got %q", p.Status)
	}
	if p.ReadTime != 1 {
		t.Errorf("expected missing readTime to be computed as 1, got %d", p.ReadTime)
	}
}

func TestExportRoundTrip(t *testing.T) {
	original := []Post{
		{
			ID: "round-trip", Title: "Round Trip", Description: "d",
			Content: "c", Author: "a",
			PublishDate: "2026-03-01T12:00:00Z", LastModified: "2026-03-02T12:00:00Z",
			Tags: []string{"go", "json"}, FeaturedImage: "/public/x.png",
			ReadTime: 2, Status: StatusPublished,
			SEO: &SEO{MetaTitle: "mt", Keywords: "k"},
		},
	}

	data, err := ExportJSON(original)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "blogs.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	loaded, err := NewStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load of export failed: %v", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("expected 1 post after round trip, got %d", len(loaded))
	}
	got := loaded[0]
	if got.ID != original[0].ID || got.Title != original[0].Title ||
		got.PublishDate != original[0].PublishDate || got.Status != original[0].Status {
		t.Errorf("round trip changed post: %+v", got)
	}
	if got.SEO == nil || got.SEO.MetaTitle != "mt" {
		t.Errorf("round trip lost SEO block: %+v", got.SEO)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" {
		t.Errorf("round trip changed tags: %v", got.Tags)
	}
}

func TestExportNilCollection(t *testing.T) {
	data, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty array for nil collection, got %s", data)
	}
}
