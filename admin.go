package portfolio

import (
	"errors"
	"net/http"
	"net/url"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/ybakr/portfolio/views"
)

const exportFilename = "blogs.json"

// handleAdmin shows the login prompt to anonymous visitors and the
// dashboard to an authenticated operator.
func (a *App) handleAdmin(c echo.Context) error {
	if !a.isLoggedIn(c) {
		showError := c.QueryParam("status") == "denied"
		return Render(c, views.AdminLogin(a.site(), showError, CsrfToken(c)))
	}
	return a.renderDashboard(c, c.QueryParam("msg"))
}

func (a *App) renderDashboard(c echo.Context, message string) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := parseDate(sorted[i].PublishDate)
		tj, _ := parseDate(sorted[j].PublishDate)
		return ti.After(tj)
	})
	return Render(c, views.AdminDashboard(a.site(), a.viewPosts(sorted), message, CsrfToken(c)))
}

// handleAdminLogin checks the submitted password against the gate and, on
// success, stamps the session with its expiry. The password itself is
// never logged.
func (a *App) handleAdminLogin(c echo.Context) error {
	values, save, err := sessionValues(c)
	if err != nil {
		return err
	}
	if !a.Gate.Authenticate(values, c.FormValue("password")) {
		c.Logger().Warnf("failed admin login from %s", c.RealIP())
		return Render(c, views.AdminLogin(a.site(), true, CsrfToken(c)))
	}
	if err := save(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	values, save, err := sessionValues(c)
	if err != nil {
		return err
	}
	a.Gate.Logout(values)
	if err := save(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleAdminNew(c echo.Context) error {
	draft := views.Post{Author: a.Config.Author}
	return Render(c, views.Editor(a.site(), draft, "create", "", CsrfToken(c)))
}

func (a *App) handleAdminEdit(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	post, err := Find(posts, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.redirectDashboard(c, "No such post.")
		}
		return err
	}
	return Render(c, views.Editor(a.site(), a.viewPost(post), "edit", "", CsrfToken(c)))
}

// handleAdminSave applies a create or edit to the in-memory collection.
// Validation failures re-render the form with the operator's input intact.
func (a *App) handleAdminSave(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}

	form := PostForm{
		ID:            c.FormValue("id"),
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		Content:       c.FormValue("content"),
		Author:        c.FormValue("author"),
		Tags:          SplitTags(c.FormValue("tags")),
		FeaturedImage: c.FormValue("featuredImage"),
		Status:        c.FormValue("status"),
		SEO:           seoFromForm(c),
	}
	mode := c.FormValue("mode")

	var updated []Post
	if mode == "edit" {
		updated, _, err = a.Editor.Update(posts, form.ID, form)
	} else {
		mode = "create"
		updated, _, err = a.Editor.Create(posts, form)
	}
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return Render(c, views.Editor(a.site(), formView(form), mode, verr.Error(), CsrfToken(c)))
		}
		if errors.Is(err, ErrNotFound) {
			return a.redirectDashboard(c, "No such post.")
		}
		return err
	}

	a.Library.Replace(updated)
	return a.redirectDashboard(c, "Saved. Export and redeploy to make it permanent.")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	a.Library.Replace(a.Editor.Delete(posts, c.Param("id")))
	return a.redirectDashboard(c, "Deleted. Export and redeploy to make it permanent.")
}

// handleAdminExport serves the full collection, drafts included, as a JSON
// download that byte-for-byte replaces the deployed data file.
func (a *App) handleAdminExport(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	data, err := ExportJSON(posts)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (a *App) redirectDashboard(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

// seoFromForm collects the optional SEO fieldset. All fields empty means
// no SEO block at all, keeping the exported JSON free of empty objects.
func seoFromForm(c echo.Context) *SEO {
	seo := SEO{
		MetaTitle:       c.FormValue("seo.metaTitle"),
		MetaDescription: c.FormValue("seo.metaDescription"),
		Keywords:        c.FormValue("seo.keywords"),
		OGImage:         c.FormValue("seo.ogImage"),
		OGType:          c.FormValue("seo.ogType"),
	}
	if seo == (SEO{}) {
		return nil
	}
	return &seo
}

// formView echoes a rejected form back into the editor template.
func formView(form PostForm) views.Post {
	v := views.Post{
		ID:            form.ID,
		Title:         form.Title,
		Description:   form.Description,
		Content:       form.Content,
		Author:        form.Author,
		Tags:          form.Tags,
		FeaturedImage: form.FeaturedImage,
		Draft:         form.Status != StatusPublished,
	}
	if form.SEO != nil {
		v.SEO = views.SEOFields{
			MetaTitle:       form.SEO.MetaTitle,
			MetaDescription: form.SEO.MetaDescription,
			Keywords:        form.SEO.Keywords,
			OGImage:         form.SEO.OGImage,
			OGType:          form.SEO.OGType,
		}
	}
	return v
}
