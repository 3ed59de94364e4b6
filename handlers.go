package portfolio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ybakr/portfolio/views"
)

// relatedLimit caps the related-posts rail on the article page.
const relatedLimit = 3

// viewPost converts a Post into its view model. A malformed date renders
// as an empty string, never as an error.
func (a *App) viewPost(p Post) views.Post {
	dateISO, _ := FormatDateISO(p.PublishDate)
	modISO, _ := FormatDateISO(p.LastModified)
	v := views.Post{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Content:       p.Content,
		Author:        p.Author,
		Date:          FormatDate(p.PublishDate),
		DateISO:       dateISO,
		Modified:      FormatDate(p.LastModified),
		ModifiedISO:   modISO,
		Tags:          p.Tags,
		FeaturedImage: p.FeaturedImage,
		ReadTime:      p.ReadTime,
		Draft:         !p.Published(),
		Link:          "/blog/" + p.ID + "/",
	}
	if p.SEO != nil {
		v.SEO = views.SEOFields{
			MetaTitle:       p.SEO.MetaTitle,
			MetaDescription: p.SEO.MetaDescription,
			Keywords:        p.SEO.Keywords,
			OGImage:         p.SEO.OGImage,
			OGType:          p.SEO.OGType,
		}
	}
	return v
}

func (a *App) viewPosts(posts []Post) []views.Post {
	out := make([]views.Post, len(posts))
	for i, p := range posts {
		out[i] = a.viewPost(p)
	}
	return out
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// handleHome serves the blog listing with optional tag filter and search.
func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	published := Published(posts)
	tag := c.QueryParam("tag")
	query := c.QueryParam("q")
	filtered := Search(FilterByTag(published, tag), query)
	tags := AllTags(published)
	return Render(c, views.Home(a.site(), a.viewPosts(filtered), tag, query, tags, a.isLoggedIn(c)))
}

// handlePost serves a single article. Drafts are invisible to anonymous
// visitors; a logged-in operator can preview them.
func (a *App) handlePost(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	published := Published(posts)
	loggedIn := a.isLoggedIn(c)

	visible := published
	if loggedIn {
		visible = posts
	}
	post, err := Find(visible, c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}

	related := Related(post, published, relatedLimit)
	toc := viewTOC(TableOfContents(post.Content))
	return Render(c, views.PostPage(a.site(), a.viewPost(post), a.viewPosts(related), toc, loggedIn))
}

func viewTOC(headings []Heading) []views.Heading {
	out := make([]views.Heading, len(headings))
	for i, h := range headings {
		out[i] = views.Heading{ID: h.ID, Text: h.Text, Level: h.Level}
	}
	return out
}

// handleContact serves the contact form.
func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.site(), c.QueryParam("status"), CsrfToken(c), a.isLoggedIn(c)))
}

// handleContactSubmit forwards the submission to the email service.
// Failure just reports back and the visitor resubmits.
func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many messages. Try again later.")
	}
	msg := ContactMessage{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}
	if err := a.Mailer.Send(c.Request().Context(), msg); err != nil {
		c.Logger().Errorf("contact send failed: %v", err)
		return c.Redirect(http.StatusSeeOther, "/contact/?status=error")
	}
	return c.Redirect(http.StatusSeeOther, "/contact/?status=sent")
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
