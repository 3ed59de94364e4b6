package portfolio

import (
	"strings"
	"time"
)

// Editor assembles edits into a new collection. Every operation is a pure
// value transformation. Nothing here persists; the result lives in memory
// until the operator downloads the export and redeploys it.
type Editor struct {
	now func() time.Time
}

// NewEditor returns an Editor using the wall clock.
func NewEditor() *Editor {
	return &Editor{now: time.Now}
}

// Create appends a new post built from form. The id is the operator's
// manual override when given, otherwise the slug of the title derived at
// submit time. Required fields and id uniqueness are validated; publishDate
// and lastModified are set to now and readTime is computed from content.
func (e *Editor) Create(posts []Post, form PostForm) ([]Post, Post, error) {
	id := strings.TrimSpace(form.ID)
	if id == "" {
		id = Slugify(form.Title)
	}
	if err := validateForm(form, id); err != nil {
		return nil, Post{}, err
	}
	if _, err := Find(posts, id); err == nil {
		return nil, Post{}, &ValidationError{Field: "id", Reason: "a post with id " + id + " already exists"}
	}

	now := e.now().UTC().Format(time.RFC3339)
	post := Post{
		ID:            id,
		Title:         form.Title,
		Description:   form.Description,
		Content:       form.Content,
		Author:        form.Author,
		PublishDate:   now,
		LastModified:  now,
		Tags:          form.Tags,
		FeaturedImage: form.FeaturedImage,
		ReadTime:      EstimateReadTime(form.Content),
		Status:        statusOrDraft(form.Status),
		SEO:           form.SEO,
	}

	out := make([]Post, 0, len(posts)+1)
	out = append(out, posts...)
	out = append(out, post)
	return out, post, nil
}

// Update replaces the mutable fields of the post with the given id. The id
// and publishDate are immutable once created; lastModified moves to now and
// readTime is recomputed. ErrNotFound if no post has that id.
func (e *Editor) Update(posts []Post, id string, form PostForm) ([]Post, Post, error) {
	idx := -1
	for i, p := range posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, Post{}, ErrNotFound
	}
	if err := validateForm(form, id); err != nil {
		return nil, Post{}, err
	}

	updated := Post{
		ID:            id,
		Title:         form.Title,
		Description:   form.Description,
		Content:       form.Content,
		Author:        form.Author,
		PublishDate:   posts[idx].PublishDate,
		LastModified:  e.now().UTC().Format(time.RFC3339),
		Tags:          form.Tags,
		FeaturedImage: form.FeaturedImage,
		ReadTime:      EstimateReadTime(form.Content),
		Status:        statusOrDraft(form.Status),
		SEO:           form.SEO,
	}

	out := make([]Post, len(posts))
	copy(out, posts)
	out[idx] = updated
	return out, updated, nil
}

// Delete removes the post with the given id. Deleting an id that is not in
// the collection is a no-op, so a second click on a stale dashboard row
// behaves the same as the first.
func (e *Editor) Delete(posts []Post, id string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func validateForm(form PostForm, id string) error {
	switch {
	case strings.TrimSpace(form.Title) == "":
		return &ValidationError{Field: "title", Reason: "required"}
	case strings.TrimSpace(form.Description) == "":
		return &ValidationError{Field: "description", Reason: "required"}
	case strings.TrimSpace(form.Content) == "":
		return &ValidationError{Field: "content", Reason: "required"}
	case id == "":
		return &ValidationError{Field: "id", Reason: "required; add a title or slug"}
	}
	return nil
}

func statusOrDraft(status string) string {
	if status == StatusPublished {
		return StatusPublished
	}
	return StatusDraft
}
