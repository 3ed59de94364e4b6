package portfolio

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the assembled site. It wires together the post store, the working
// collection, the admin gate and editor, the contact mailer, middleware,
// and routes.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Library *Library
	Gate    *Gate
	Editor  *Editor
	Mailer  *Mailer

	contactLimiter *RateLimiter
	customRoutes   []func(*App)
	staticDir      string
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start validates the configuration, wires everything up, and runs the
// server until it is shut down.
func (a *App) Start() error {
	warnings, err := a.Config.validate()
	if err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	for _, w := range warnings {
		a.Echo.Logger.Warnf("portfolio: %s", w)
	}

	a.Store = NewStore(a.Config.DataPath)
	a.Library = NewLibrary(a.Store, a.Config.PostCacheTTL)
	a.Gate = NewGate(a.Config.AdminPassword)
	a.Editor = NewEditor()
	a.Mailer = NewMailer(a.Config)
	a.contactLimiter = NewRateLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Default theme assets ship embedded and are served under /public/,
	// next to the user's own static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/images/default-blog.svg", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)

	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", a.handleAdminLogout)

	admin := e.Group("/admin", a.requireAdmin)
	admin.GET("/new/", a.handleAdminNew)
	admin.GET("/edit/:id/", a.handleAdminEdit)
	admin.POST("/save/", a.handleAdminSave)
	admin.POST("/delete/:id/", a.handleAdminDelete)
	admin.GET("/export/", a.handleAdminExport)
}
