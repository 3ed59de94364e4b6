package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/a-h/templ"
)

// component adapts a buffer-writing function into a templ.Component, the
// same shape Markdown uses. Pages are assembled from these.
func component(fn func(ctx context.Context, buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fn(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// Layout wraps body in the shared page chrome: head with SEO/OpenGraph
// tags, navigation, and footer.
func Layout(site Site, meta PageMeta, loggedIn bool, body templ.Component) templ.Component {
	return component(func(ctx context.Context, buf *bytes.Buffer) error {
		title := meta.Title
		if title == "" {
			title = site.Name
		}
		description := meta.Description
		if description == "" {
			description = site.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		buf.WriteString("<meta charset=\"utf-8\">\n")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		fmt.Fprintf(buf, "<title>%s</title>\n", esc(title))
		if description != "" {
			fmt.Fprintf(buf, "<meta name=\"description\" content=\"%s\">\n", esc(description))
		}
		if meta.Keywords != "" {
			fmt.Fprintf(buf, "<meta name=\"keywords\" content=\"%s\">\n", esc(meta.Keywords))
		}
		if meta.URL != "" {
			fmt.Fprintf(buf, "<link rel=\"canonical\" href=\"%s\">\n", esc(meta.URL))
			fmt.Fprintf(buf, "<meta property=\"og:url\" content=\"%s\">\n", esc(meta.URL))
		}
		fmt.Fprintf(buf, "<meta property=\"og:title\" content=\"%s\">\n", esc(title))
		if description != "" {
			fmt.Fprintf(buf, "<meta property=\"og:description\" content=\"%s\">\n", esc(description))
		}
		fmt.Fprintf(buf, "<meta property=\"og:type\" content=\"%s\">\n", esc(ogType))
		if meta.OGImage != "" {
			fmt.Fprintf(buf, "<meta property=\"og:image\" content=\"%s\">\n", esc(meta.OGImage))
		}
		fmt.Fprintf(buf, "<meta property=\"og:site_name\" content=\"%s\">\n", esc(site.Name))
		buf.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\">\n")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\">\n")
		fmt.Fprintf(buf, "<script type=\"application/ld+json\">%s</script>\n", WebsiteJsonLD(site))
		buf.WriteString("</head>\n<body>\n")

		buf.WriteString("<header class=\"site-header\">\n")
		fmt.Fprintf(buf, "<a class=\"brand\" href=\"/\">%s</a>\n", esc(site.Name))
		buf.WriteString("<nav>\n<a href=\"/\">Blog</a>\n<a href=\"/contact/\">Contact</a>\n")
		if loggedIn {
			buf.WriteString("<a href=\"/admin/\">Dashboard</a>\n")
		}
		buf.WriteString("</nav>\n</header>\n<main>\n")

		if err := body.Render(ctx, buf); err != nil {
			return err
		}

		buf.WriteString("</main>\n<footer class=\"site-footer\">\n")
		fmt.Fprintf(buf, "<p>&copy; %d %s</p>\n", time.Now().Year(), esc(footerName(site)))
		buf.WriteString("</footer>\n</body>\n</html>\n")
		return nil
	})
}

func footerName(site Site) string {
	if site.Author != "" {
		return site.Author
	}
	return site.Name
}
