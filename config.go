package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SiteConfig holds all configuration for the site. Everything comes from
// environment variables; secrets are compared in memory and never logged.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for bylines and JSON-LD

	Addr     string // Listen address (default ":3000")
	DataPath string // Post collection JSON path (default "data/blogs.json")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	// EmailJS credentials for the contact form. The form is disabled when
	// any of the three is empty.
	EmailServiceID  string
	EmailTemplateID string
	EmailPublicKey  string

	PostCacheTTL time.Duration // Collection reload interval (default 5min)
}

// ConfigFromEnv loads .env if present and builds a SiteConfig from the
// environment.
func ConfigFromEnv() SiteConfig {
	_ = godotenv.Load(".env")

	return SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         strings.TrimSuffix(os.Getenv("SITE_URL"), "/"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),

		Addr:     os.Getenv("ADDR"),
		DataPath: os.Getenv("BLOG_DATA_PATH"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),

		EmailServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
	}
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DataPath == "" {
		c.DataPath = "data/blogs.json"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// validate returns warnings for optional gaps and an error for config the
// app cannot run without.
func (c *SiteConfig) validate() (warnings []string, err error) {
	if c.AdminPassword == "" {
		return nil, fmt.Errorf("AdminPassword is required (ADMIN_PASSWORD)")
	}
	if c.SessionSecret == "" {
		return nil, fmt.Errorf("SessionSecret is required (ADMIN_SESSION_SECRET)")
	}
	if c.EmailServiceID == "" || c.EmailTemplateID == "" || c.EmailPublicKey == "" {
		warnings = append(warnings, "EmailJS is not fully configured; the contact form will report failure")
	}
	return warnings, nil
}

// EmailConfigured reports whether all three EmailJS credentials are set.
func (c *SiteConfig) EmailConfigured() bool {
	return c.EmailServiceID != "" && c.EmailTemplateID != "" && c.EmailPublicKey != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for user-owned static assets
// (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
