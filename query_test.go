package portfolio

import (
	"errors"
	"testing"
)

func samplePosts() []Post {
	return []Post{
		{ID: "a", Title: "Go Concurrency", Description: "channels and goroutines",
			PublishDate: "2026-01-10T00:00:00Z", Tags: []string{"go", "concurrency"}, Status: StatusPublished},
		{ID: "b", Title: "Testing in Go", Description: "table tests",
			PublishDate: "2026-03-05T00:00:00Z", Tags: []string{"go", "testing"}, Status: StatusPublished},
		{ID: "c", Title: "CSS Grid Notes", Description: "layout",
			PublishDate: "2026-02-01T00:00:00Z", Tags: []string{"css"}, Status: StatusPublished},
		{ID: "d", Title: "Unfinished Draft", Description: "wip",
			PublishDate: "2026-04-01T00:00:00Z", Tags: []string{"go"}, Status: StatusDraft},
	}
}

func TestPublishedFiltersAndSorts(t *testing.T) {
	got := Published(samplePosts())

	if len(got) != 3 {
		t.Fatalf("expected 3 published posts, got %d", len(got))
	}
	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestPublishedUnparsableDateSortsLast(t *testing.T) {
	posts := append(samplePosts(), Post{
		ID: "broken", Title: "Broken Date", PublishDate: "not a date", Status: StatusPublished,
	})

	got := Published(posts)
	if got[len(got)-1].ID != "broken" {
		t.Errorf("expected unparsable date to sort last, got order %v", ids(got))
	}
}

func ids(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFind(t *testing.T) {
	posts := samplePosts()

	p, err := Find(posts, "b")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if p.Title != "Testing in Go" {
		t.Errorf("Find returned wrong post: %+v", p)
	}

	_, err = Find(posts, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllTags(t *testing.T) {
	got := AllTags(Published(samplePosts()))
	want := []string{"concurrency", "css", "go", "testing"}

	if len(got) != len(want) {
		t.Fatalf("AllTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterByTag(t *testing.T) {
	posts := Published(samplePosts())

	if got := FilterByTag(posts, "go"); len(got) != 2 {
		t.Errorf("expected 2 go posts, got %v", ids(got))
	}
	if got := FilterByTag(posts, ""); len(got) != len(posts) {
		t.Errorf("empty tag should return input unchanged")
	}
	if got := FilterByTag(posts, TagAll); len(got) != len(posts) {
		t.Errorf("tag %q should return input unchanged", TagAll)
	}
	if got := FilterByTag(posts, "GO"); len(got) != 0 {
		t.Errorf("tag match is exact; expected no posts for \"GO\", got %v", ids(got))
	}
}

func TestSearch(t *testing.T) {
	posts := Published(samplePosts())

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"b", "c", "a"}},
		{"CONCURRENCY", []string{"a"}},      // case-insensitive, matches title and tag
		{"table", []string{"b"}},            // description
		{"css", []string{"c"}},              // tag
		{"go", []string{"b", "a"}},          // substring across fields, order preserved
		{"no such thing", nil},
	}
	for _, tt := range tests {
		got := ids(Search(posts, tt.query))
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRelated(t *testing.T) {
	posts := []Post{
		{ID: "a", Tags: []string{"go", "web", "http"}, Status: StatusPublished},
		{ID: "b", Tags: []string{"go", "web"}, Status: StatusPublished},
		{ID: "c", Tags: []string{"go"}, Status: StatusPublished},
		{ID: "d", Tags: []string{"rust"}, Status: StatusPublished},
	}

	got := Related(posts[0], posts, 3)
	want := []string{"b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Related = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("Related[%d] = %q, want %q", i, got[i].ID, want[i])
		}
	}
}

func TestRelatedDuplicateTagsCountOnce(t *testing.T) {
	post := Post{ID: "x", Tags: []string{"go"}}
	posts := []Post{
		{ID: "dup", Tags: []string{"go", "go", "go"}},
		{ID: "two", Tags: []string{"go", "web"}},
		post,
	}
	other := Post{ID: "y", Tags: []string{"go", "web"}}

	got := Related(other, posts, 5)
	// "two" shares two distinct tags and must beat "dup" despite its repeats.
	if len(got) < 2 || got[0].ID != "two" {
		t.Errorf("expected \"two\" ranked first, got %v", ids(got))
	}
}

func TestRelatedLimitAndSelfExclusion(t *testing.T) {
	posts := samplePosts()
	self := posts[0]

	got := Related(self, posts, 1)
	if len(got) > 1 {
		t.Errorf("limit 1 returned %d posts", len(got))
	}
	for _, p := range got {
		if p.ID == self.ID {
			t.Errorf("Related included the post itself")
		}
	}

	if got := Related(self, posts, 0); got != nil {
		t.Errorf("limit 0 should return nil, got %v", ids(got))
	}
	if got := Related(self, nil, 3); got != nil {
		t.Errorf("empty collection should return nil, got %v", ids(got))
	}
}
