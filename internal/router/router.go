// Package router sets up all HTTP routes and middleware chains for the
// public site.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"goldenhills/internal/handlers"
	"goldenhills/internal/middleware"
	"goldenhills/web"
)

// contactLimit allows a handful of contact submissions per client IP
// per minute. Browsing routes are never rate limited.
const (
	contactLimitRequests = 5
	contactLimitWindow   = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(site *handlers.Site) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check for load balancers.
	r.Get("/health", site.Health)

	// Static assets from the embedded filesystem.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from embed: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Feeds.
	r.Get("/rss.xml", site.RSS)
	r.Get("/sitemap.xml", site.Sitemap)

	// Catalog.
	r.Get("/products", site.Products)
	r.Get("/products/{slug}", site.Product)

	// Blog. The entity listings must register before /blog/{slug} so
	// chi matches the more specific patterns first.
	r.Route("/blog", func(r chi.Router) {
		r.Get("/", site.Blog)
		r.Get("/category/{slug}", site.BlogCategory)
		r.Get("/tag/{slug}", site.BlogTag)
		r.Get("/author/{slug}", site.BlogAuthor)
		r.Get("/{slug}", site.BlogPost)
	})

	// Contact. Only the submission is rate limited.
	r.Get("/contact", site.Contact)
	r.Group(func(r chi.Router) {
		limiter := middleware.NewRateLimiter(contactLimitRequests, contactLimitWindow)
		r.Use(limiter.Middleware)
		r.Post("/contact", site.ContactSubmit)
	})

	// Homepage and the CMS page catch-all.
	r.Get("/", site.Home)
	r.Get("/{slug}", site.Page)

	return r
}
