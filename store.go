package portfolio

import (
	"context"
	"encoding/json"
	"os"
)

// Store reads the post collection from its static JSON resource. The file
// is the deployed artifact the operator overwrites by hand after an export;
// the Store itself never writes it.
type Store struct {
	path string
}

// NewStore returns a Store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing resource.
func (s *Store) Path() string { return s.path }

// Load reads and decodes the whole collection. It fails with *LoadError if
// the resource is unreachable or not valid JSON; there is no partial
// result. A cancelled context aborts the load so a stale in-flight read is
// discarded rather than applied.
func (s *Store) Load(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	var posts []Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	for i := range posts {
		normalize(&posts[i])
	}
	return posts, nil
}

// normalize fills defaults for fields a hand-edited collection file may
// omit: status defaults to draft and readTime is recomputed when missing,
// keeping the readTime >= 1 invariant.
func normalize(p *Post) {
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.ReadTime < 1 {
		p.ReadTime = EstimateReadTime(p.Content)
	}
}

// ExportJSON serializes the collection as the pretty-printed snapshot the
// operator downloads and redeploys. This is the system's only persistence;
// ExportJSON followed by Load round-trips every defined field.
func ExportJSON(posts []Post) ([]byte, error) {
	if posts == nil {
		posts = []Post{}
	}
	return json.MarshalIndent(posts, "", "  ")
}
