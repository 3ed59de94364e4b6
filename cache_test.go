package portfolio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func libraryWithFile(t *testing.T, ttl time.Duration, content string) (*Library, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogs.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write collection: %v", err)
	}
	return NewLibrary(NewStore(path), ttl), path
}

func TestLibraryLoadsAndCaches(t *testing.T) {
	lib, path := libraryWithFile(t, time.Hour, `[{"id": "a", "content": "c"}]`)
	ctx := context.Background()

	posts, err := lib.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "a" {
		t.Fatalf("unexpected posts: %v", ids(posts))
	}

	// Within the TTL the file is not re-read.
	if err := os.WriteFile(path, []byte(`[{"id": "b", "content": "c"}]`), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	posts, err = lib.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if posts[0].ID != "a" {
		t.Errorf("expected cached collection, got %v", ids(posts))
	}
}

func TestLibraryReloadsAfterTTL(t *testing.T) {
	lib, path := libraryWithFile(t, 10*time.Millisecond, `[{"id": "a", "content": "c"}]`)
	ctx := context.Background()

	if _, err := lib.Posts(ctx); err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(`[{"id": "b", "content": "c"}]`), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	posts, err := lib.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if posts[0].ID != "b" {
		t.Errorf("expected reload after TTL, got %v", ids(posts))
	}
}

func TestLibraryEditsSurviveTTL(t *testing.T) {
	lib, _ := libraryWithFile(t, 10*time.Millisecond, `[{"id": "a", "content": "c"}]`)
	ctx := context.Background()

	if _, err := lib.Posts(ctx); err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	lib.Replace([]Post{{ID: "edited"}})

	time.Sleep(20 * time.Millisecond)
	posts, err := lib.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "edited" {
		t.Errorf("expected edits to survive TTL reload, got %v", ids(posts))
	}
}

func TestLibraryInvalidateDropsEdits(t *testing.T) {
	lib, _ := libraryWithFile(t, time.Hour, `[{"id": "a", "content": "c"}]`)
	ctx := context.Background()

	lib.Replace([]Post{{ID: "edited"}})
	lib.Invalidate()

	posts, err := lib.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if posts[0].ID != "a" {
		t.Errorf("expected invalidate to reload from disk, got %v", ids(posts))
	}
}
