package views

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

// AdminLogin renders the password prompt.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"admin-login\">\n<h1>Admin</h1>\n")
		if showError {
			buf.WriteString("<p class=\"flash err\">Wrong password.</p>\n")
		}
		buf.WriteString("<form method=\"post\" action=\"/admin/login/\">\n")
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">\n", esc(csrfToken))
		buf.WriteString("<label>Password<input type=\"password\" name=\"password\" autofocus required></label>\n")
		buf.WriteString("<button type=\"submit\">Log in</button>\n</form>\n</section>\n")
		return nil
	})
	return Layout(site, PageMeta{Title: "Admin — " + site.Name}, false, body)
}

// AdminDashboard lists every post, drafts included, with the export banner
// that explains the manual redeploy step.
func AdminDashboard(site Site, posts []Post, message, csrfToken string) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		buf.WriteString("<section class=\"admin\">\n")
		buf.WriteString("<header class=\"admin-header\">\n<h1>Dashboard</h1>\n")
		buf.WriteString("<form method=\"post\" action=\"/admin/logout/\">")
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(csrfToken))
		buf.WriteString("<button type=\"submit\">Log out</button></form>\n</header>\n")

		buf.WriteString("<div class=\"banner\">Changes live in memory only. After creating, editing, or deleting posts, " +
			"download <strong>Export all posts</strong> and replace <code>data/blogs.json</code> in the deployment, then redeploy.</div>\n")

		if message != "" {
			fmt.Fprintf(buf, "<p class=\"flash ok\">%s</p>\n", esc(message))
		}

		fmt.Fprintf(buf, "<p class=\"count\">Total posts: %d</p>\n", len(posts))
		buf.WriteString("<p class=\"actions\"><a class=\"button\" href=\"/admin/export/\" download>Export all posts</a> " +
			"<a class=\"button primary\" href=\"/admin/new/\">Create new post</a></p>\n")

		buf.WriteString("<table class=\"admin-posts\">\n<thead><tr><th>Title</th><th>Status</th><th>Published</th><th>Read</th><th></th></tr></thead>\n<tbody>\n")
		for _, p := range posts {
			status := "published"
			if p.Draft {
				status = "draft"
			}
			buf.WriteString("<tr>")
			fmt.Fprintf(buf, "<td><a href=\"%s\">%s</a></td>", esc(p.Link), esc(p.Title))
			fmt.Fprintf(buf, "<td><span class=\"badge %s\">%s</span></td>", status, status)
			fmt.Fprintf(buf, "<td>%s</td>", esc(p.Date))
			fmt.Fprintf(buf, "<td>%d min</td>", p.ReadTime)
			buf.WriteString("<td class=\"row-actions\">")
			fmt.Fprintf(buf, "<a href=\"/admin/edit/%s/\">Edit</a> ", PathEscape(p.ID))
			fmt.Fprintf(buf, "<form method=\"post\" action=\"/admin/delete/%s/\" onsubmit=\"return confirm('Delete this post?')\">", PathEscape(p.ID))
			fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">", esc(csrfToken))
			buf.WriteString("<button type=\"submit\">Delete</button></form>")
			buf.WriteString("</td></tr>\n")
		}
		buf.WriteString("</tbody>\n</table>\n</section>\n")
		return nil
	})
	return Layout(site, PageMeta{Title: "Dashboard — " + site.Name}, true, body)
}

// Editor renders the create/edit form. mode is "create" or "edit".
func Editor(site Site, post Post, mode, errMsg, csrfToken string) templ.Component {
	body := component(func(ctx context.Context, buf *bytes.Buffer) error {
		heading := "New post"
		if mode == "edit" {
			heading = "Edit post"
		}
		buf.WriteString("<section class=\"editor\">\n")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", heading)
		if errMsg != "" {
			fmt.Fprintf(buf, "<p class=\"flash err\">%s</p>\n", esc(errMsg))
		}
		buf.WriteString("<form method=\"post\" action=\"/admin/save/\">\n")
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\">\n", esc(csrfToken))
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"mode\" value=\"%s\">\n", esc(mode))

		fmt.Fprintf(buf, "<label>Title<input type=\"text\" name=\"title\" value=\"%s\" required></label>\n", esc(post.Title))
		if mode == "edit" {
			fmt.Fprintf(buf, "<input type=\"hidden\" name=\"id\" value=\"%s\">\n", esc(post.ID))
			fmt.Fprintf(buf, "<p class=\"hint\">Slug: <code>%s</code> (fixed)</p>\n", esc(post.ID))
		} else {
			fmt.Fprintf(buf, "<label>Slug (leave empty to derive from title)<input type=\"text\" name=\"id\" value=\"%s\"></label>\n", esc(post.ID))
		}
		fmt.Fprintf(buf, "<label>Description<input type=\"text\" name=\"description\" value=\"%s\" required></label>\n", esc(post.Description))
		fmt.Fprintf(buf, "<label>Author<input type=\"text\" name=\"author\" value=\"%s\"></label>\n", esc(post.Author))
		fmt.Fprintf(buf, "<label>Tags (comma-separated)<input type=\"text\" name=\"tags\" value=\"%s\"></label>\n", esc(JoinTags(post.Tags)))
		fmt.Fprintf(buf, "<label>Featured image<input type=\"text\" name=\"featuredImage\" value=\"%s\"></label>\n", esc(post.FeaturedImage))
		fmt.Fprintf(buf, "<label>Content (markdown)<textarea name=\"content\" rows=\"20\" required>%s</textarea></label>\n", esc(post.Content))
		if post.ReadTime > 0 {
			fmt.Fprintf(buf, "<p class=\"hint\">Estimated read time: %d min (recomputed on save)</p>\n", post.ReadTime)
		}

		buf.WriteString("<fieldset>\n<legend>SEO</legend>\n")
		fmt.Fprintf(buf, "<label>Meta title<input type=\"text\" name=\"seo.metaTitle\" value=\"%s\"></label>\n", esc(post.SEO.MetaTitle))
		fmt.Fprintf(buf, "<label>Meta description<input type=\"text\" name=\"seo.metaDescription\" value=\"%s\"></label>\n", esc(post.SEO.MetaDescription))
		fmt.Fprintf(buf, "<label>Keywords<input type=\"text\" name=\"seo.keywords\" value=\"%s\"></label>\n", esc(post.SEO.Keywords))
		fmt.Fprintf(buf, "<label>OG image<input type=\"text\" name=\"seo.ogImage\" value=\"%s\"></label>\n", esc(post.SEO.OGImage))
		buf.WriteString("</fieldset>\n")

		buf.WriteString("<p class=\"actions\">")
		buf.WriteString("<button type=\"submit\" name=\"status\" value=\"draft\">Save draft</button> ")
		buf.WriteString("<button type=\"submit\" name=\"status\" value=\"published\" class=\"primary\">Publish</button>")
		buf.WriteString("</p>\n</form>\n</section>\n")
		return nil
	})
	return Layout(site, PageMeta{Title: "Editor — " + site.Name}, true, body)
}
