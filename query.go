package portfolio

import (
	"sort"
	"strings"
)

// TagAll is the sentinel tag value meaning "no tag filter".
const TagAll = "all"

// Published keeps only published posts, ordered by publish date descending
// (newest first). Posts with unparsable dates sort as epoch zero rather
// than failing; ordering among them is unspecified but stable.
func Published(posts []Post) []Post {
	var out []Post
	for _, p := range posts {
		if p.Published() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := parseDate(out[i].PublishDate)
		tj, _ := parseDate(out[j].PublishDate)
		return ti.After(tj)
	})
	return out
}

// Find returns the post with the given id, or ErrNotFound.
func Find(posts []Post, id string) (Post, error) {
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// AllTags returns the distinct tags across posts, sorted ascending.
// Tags are compared case-sensitively; no normalization is applied.
func AllTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// FilterByTag returns posts whose tag list contains tag exactly. An empty
// tag or the "all" sentinel returns the input unchanged.
func FilterByTag(posts []Post, tag string) []Post {
	if tag == "" || tag == TagAll {
		return posts
	}
	var out []Post
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns posts matching query case-insensitively against the title,
// description, or any tag entry (substring, logical OR). An empty query
// returns the input unchanged.
func Search(posts []Post, query string) []Post {
	if query == "" {
		return posts
	}
	q := strings.ToLower(query)
	var out []Post
	for _, p := range posts {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Related returns up to limit posts that share at least one tag with post,
// best matches first. The score is the number of distinct shared tags;
// duplicate tags in either list count once. Ties keep input order; the post
// itself and zero-score candidates are excluded.
func Related(post Post, posts []Post, limit int) []Post {
	if len(posts) == 0 || limit <= 0 {
		return nil
	}
	tagSet := make(map[string]struct{}, len(post.Tags))
	for _, t := range post.Tags {
		tagSet[t] = struct{}{}
	}

	type scored struct {
		post  Post
		score int
	}
	var candidates []scored
	for _, p := range posts {
		if p.ID == post.ID {
			continue
		}
		seen := make(map[string]struct{})
		score := 0
		for _, t := range p.Tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			if _, ok := tagSet[t]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{post: p, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Post, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}
