// Package portfolio is a personal portfolio and blog site built with Go,
// Echo, and templ. The post collection lives in a static JSON file; edits
// made through the admin dashboard stay in memory until the operator
// downloads the exported snapshot and redeploys it by hand.
package portfolio

// Post statuses. Only published posts are visible to public pages.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is one blog article record as stored in the JSON collection.
// The ID is a URL-safe slug derived from the title at creation time and
// immutable afterwards; it is the join key everywhere.
type Post struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	PublishDate   string   `json:"publishDate"`
	LastModified  string   `json:"lastModified"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	ReadTime      int      `json:"readTime"`
	Status        string   `json:"status"`
	SEO           *SEO     `json:"seo,omitempty"`
}

// SEO carries per-post presentation metadata for the <head> block.
// It never participates in business logic.
type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	Keywords        string `json:"keywords,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`
	OGType          string `json:"ogType,omitempty"`
}

// Published reports whether the post is visible to anonymous visitors.
func (p Post) Published() bool {
	return p.Status == StatusPublished
}

// HasTag reports whether tag appears in the post's tag list (exact match).
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PostForm is the payload submitted by the admin editor. ID is an optional
// manual override in create mode; in edit mode it is ignored in favour of
// the route's id.
type PostForm struct {
	ID            string
	Title         string
	Description   string
	Content       string
	Author        string
	Tags          []string
	FeaturedImage string
	Status        string
	SEO           *SEO
}

// ContactMessage is a contact-form submission forwarded to the
// transactional-email service.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
