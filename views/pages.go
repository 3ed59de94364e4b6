package views

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// defaultFeaturedImage is shown when a post has no featured image of its own.
const defaultFeaturedImage = "/public/images/default-blog.svg"

// Home renders the blog listing with the search box and tag filter.
func Home(site Site, posts []Post, activeTag, query string, tags []string, loggedIn bool) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"hero\">\n")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", esc(site.Name))
		if site.Description != "" {
			fmt.Fprintf(buf, "<p class=\"tagline\">%s</p>\n", esc(site.Description))
		}
		buf.WriteString("</section>\n")

		buf.WriteString("<form class=\"search\" method=\"get\" action=\"/\">\n")
		fmt.Fprintf(buf, "<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search posts…\" aria-label=\"Search posts\">\n", esc(query))
		buf.WriteString("<button type=\"submit\">Search</button>\n</form>\n")

		writeTagFilter(buf, tags, activeTag)

		if len(posts) == 0 {
			buf.WriteString("<p class=\"empty\">No posts found.</p>\n")
		}
		buf.WriteString("<section class=\"post-list\">\n")
		for _, p := range posts {
			writePostCard(buf, p)
		}
		buf.WriteString("</section>\n")
		return nil
	})

	meta := PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}
	return Layout(site, meta, loggedIn, body)
}

func writeTagFilter(buf *bytes.Buffer, tags []string, active string) {
	if len(tags) == 0 {
		return
	}
	buf.WriteString("<nav class=\"tags\">\n")
	allClass := "tag"
	if active == "" || active == "all" {
		allClass = "tag active"
	}
	fmt.Fprintf(buf, "<a class=\"%s\" href=\"/\">all</a>\n", allClass)
	for _, t := range tags {
		class := "tag"
		if t == active {
			class = "tag active"
		}
		fmt.Fprintf(buf, "<a class=\"%s\" href=\"/?tag=%s\">%s</a>\n", class, PathEscape(t), esc(t))
	}
	buf.WriteString("</nav>\n")
}

func writePostCard(buf *bytes.Buffer, p Post) {
	buf.WriteString("<article class=\"post-card\">\n")
	fmt.Fprintf(buf, "<h2><a href=\"%s\">%s</a></h2>\n", esc(p.Link), esc(p.Title))
	fmt.Fprintf(buf, "<p class=\"byline\"><time datetime=\"%s\">%s</time> &middot; %d min read</p>\n",
		esc(p.DateISO), esc(p.Date), p.ReadTime)
	if p.Description != "" {
		fmt.Fprintf(buf, "<p>%s</p>\n", esc(p.Description))
	}
	if len(p.Tags) > 0 {
		buf.WriteString("<p class=\"tags\">")
		for _, t := range p.Tags {
			fmt.Fprintf(buf, "<a class=\"tag\" href=\"/?tag=%s\">%s</a> ", PathEscape(t), esc(t))
		}
		buf.WriteString("</p>\n")
	}
	buf.WriteString("</article>\n")
}

// PostPage renders one article with its table of contents and related posts.
func PostPage(site Site, post Post, related []Post, toc []Heading, loggedIn bool) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		fmt.Fprintf(buf, "<script type=\"application/ld+json\">%s</script>\n", BlogPostingJsonLD(site, post))
		buf.WriteString("<article class=\"post\">\n<header>\n")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", esc(post.Title))
		fmt.Fprintf(buf, "<p class=\"byline\">%s &middot; <time datetime=\"%s\">%s</time> &middot; %d min read</p>\n",
			esc(post.Author), esc(post.DateISO), esc(post.Date), post.ReadTime)
		img := post.FeaturedImage
		if img == "" {
			img = defaultFeaturedImage
		}
		fmt.Fprintf(buf, "<img class=\"featured\" src=\"%s\" alt=\"%s\" onerror=\"this.src='%s'\">\n",
			esc(img), esc(post.Title), defaultFeaturedImage)
		buf.WriteString("</header>\n")

		if len(toc) > 1 {
			buf.WriteString("<nav class=\"toc\">\n<h2>Contents</h2>\n<ul>\n")
			for _, h := range toc {
				fmt.Fprintf(buf, "<li class=\"toc-%d\"><a href=\"#%s\">%s</a></li>\n", h.Level, esc(h.ID), esc(h.Text))
			}
			buf.WriteString("</ul>\n</nav>\n")
		}

		buf.WriteString("<div class=\"content\">\n")
		if err := Markdown(post.Content).Render(ctx, buf); err != nil {
			return err
		}
		buf.WriteString("</div>\n")

		if len(post.Tags) > 0 {
			buf.WriteString("<p class=\"tags\">")
			for _, t := range post.Tags {
				fmt.Fprintf(buf, "<a class=\"tag\" href=\"/?tag=%s\">%s</a> ", PathEscape(t), esc(t))
			}
			buf.WriteString("</p>\n")
		}
		buf.WriteString("</article>\n")

		if len(related) > 0 {
			buf.WriteString("<aside class=\"related\">\n<h2>Related posts</h2>\n")
			for _, p := range related {
				writePostCard(buf, p)
			}
			buf.WriteString("</aside>\n")
		}
		return nil
	})

	title := post.SEO.MetaTitle
	if title == "" {
		title = post.Title
	}
	description := post.SEO.MetaDescription
	if description == "" {
		description = post.Description
	}
	ogType := post.SEO.OGType
	if ogType == "" {
		ogType = "article"
	}
	ogImage := post.SEO.OGImage
	if ogImage == "" {
		ogImage = post.FeaturedImage
	}
	meta := PageMeta{
		Title:       title,
		Description: description,
		URL:         buildURL(site.URL, "blog", post.ID),
		OGType:      ogType,
		OGImage:     ogImage,
		Keywords:    post.SEO.Keywords,
	}
	return Layout(site, meta, loggedIn, body)
}

// Contact renders the contact form. status is "", "sent" or "error".
func Contact(site Site, status, csrfToken string, loggedIn bool) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"contact\">\n<h1>Get in touch</h1>\n")
		switch status {
		case "sent":
			buf.WriteString("<p class=\"flash ok\">Thanks! Your message has been sent.</p>\n")
		case "error":
			buf.WriteString("<p class=\"flash err\">Something went wrong sending your message. Please try again.</p>\n")
		}
		buf.WriteString("<form method=\"post\" action=\"/contact/\">\n")
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">\n", esc(csrfToken))
		buf.WriteString("<label>Name<input type=\"text\" name=\"name\" required></label>\n")
		buf.WriteString("<label>Email<input type=\"email\" name=\"email\" required></label>\n")
		buf.WriteString("<label>Message<textarea name=\"message\" rows=\"6\" required></textarea></label>\n")
		buf.WriteString("<button type=\"submit\">Send message</button>\n</form>\n</section>\n")
		return nil
	})

	meta := PageMeta{
		Title: "Contact — " + site.Name,
		URL:   buildURL(site.URL, "contact"),
	}
	return Layout(site, meta, loggedIn, body)
}

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"error-page\">\n<h1>404</h1>\n<p>That page doesn't exist.</p>\n<p><a href=\"/\">Back to the blog</a></p>\n</section>\n")
		return nil
	})
	return Layout(site, PageMeta{Title: "Not found — " + site.Name}, false, body)
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"error-page\">\n<h1>500</h1>\n<p>Something broke on our end. Please try again.</p>\n</section>\n")
		return nil
	})
	return Layout(site, PageMeta{Title: "Error — " + site.Name}, false, body)
}
