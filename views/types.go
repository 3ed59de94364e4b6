package views

// Site holds site-wide settings passed to every template so nothing is
// hardcoded in markup.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
	Keywords    string
}

// Post is the view model for one blog article. Dates arrive pre-formatted;
// Content is raw markdown rendered by the Markdown component.
type Post struct {
	ID            string
	Title         string
	Description   string
	Content       string
	Author        string
	Date          string // long-form display date
	DateISO       string // RFC 3339, for structured data and <time datetime>
	Modified      string // display form of last modification
	ModifiedISO   string
	Tags          []string
	FeaturedImage string
	ReadTime      int
	Draft         bool
	Link          string
	SEO           SEOFields
}

// SEOFields mirrors the optional per-post metadata block for the editor
// form and the post page head.
type SEOFields struct {
	MetaTitle       string
	MetaDescription string
	Keywords        string
	OGImage         string
	OGType          string
}

// Heading is one table-of-contents entry on the post page.
type Heading struct {
	ID    string
	Text  string
	Level int
}
