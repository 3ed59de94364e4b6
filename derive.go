package portfolio

import (
	"regexp"
	"strings"
	"time"
)

// wordsPerMinute is the reading speed used for read-time estimates.
const wordsPerMinute = 200

// Slugify converts a title to a URL-safe slug: lowercase, any run of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphens. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// EstimateReadTime returns the estimated reading time of content in whole
// minutes, never less than 1.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// dateLayouts are the input forms accepted for publish/modified timestamps.
// The collection file is hand-redeployed, so be lenient about what comes in.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// parseDate parses s with the accepted layouts. The zero time (and false)
// comes back for anything unparsable; callers fall back instead of failing.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a timestamp as a long-form display date, e.g.
// "January 2, 2006". Unparsable input yields ""; display paths never fail.
func FormatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatDateISO renders a timestamp in canonical RFC 3339 UTC form for
// machine consumers (feeds, structured data). Unlike FormatDate it is
// strict: unparsable input is a *FormatError.
func FormatDateISO(s string) (string, error) {
	t, ok := parseDate(s)
	if !ok {
		return "", &FormatError{Input: s}
	}
	return t.UTC().Format(time.RFC3339), nil
}

var headingRe = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)

// Heading is one table-of-contents entry extracted from markdown content.
// ID matches the anchor goldmark generates for the heading text.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// TableOfContents extracts level 1-3 markdown headings from content.
func TableOfContents(content string) []Heading {
	var toc []Heading
	for _, line := range strings.Split(content, "\n") {
		m := headingRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		toc = append(toc, Heading{
			ID:    Slugify(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return toc
}
