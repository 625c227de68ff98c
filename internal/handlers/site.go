// Package handlers contains the HTTP handlers for the public site.
// Every page is rendered server-side from content fetched through the
// stores; handlers never talk to the content API directly.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"goldenhills/internal/contact"
	"goldenhills/internal/models"
	"goldenhills/internal/render"
	"goldenhills/internal/store"
)

const (
	// blogPageSize is the number of posts per page on the blog index.
	blogPageSize = 9
	// featuredLimit caps the featured posts strip on the homepage.
	featuredLimit = 3
	// relatedLimit caps the related items under a post or product.
	relatedLimit = 3
	// listingLimit caps category, tag, and author post listings.
	listingLimit = 9
)

// Site groups handlers for the public-facing site.
type Site struct {
	renderer *render.Renderer
	products *store.ProductStore
	pages    *store.PageStore
	settings *store.SettingsStore
	authors  *store.AuthorStore
	blog     *store.BlogStore
	notifier *contact.Notifier
	siteURL  string
}

// NewSite creates a new Site handler group. siteURL is the canonical base
// URL used for feed and sitemap links.
func NewSite(rn *render.Renderer, products *store.ProductStore, pages *store.PageStore, settings *store.SettingsStore, authors *store.AuthorStore, blog *store.BlogStore, notifier *contact.Notifier, siteURL string) *Site {
	return &Site{
		renderer: rn,
		products: products,
		pages:    pages,
		settings: settings,
		authors:  authors,
		blog:     blog,
		notifier: notifier,
		siteURL:  siteURL,
	}
}

// siteSettings fetches the site-wide settings for headers and footers.
// Settings are presentational; a fetch failure degrades to nil rather
// than failing the page.
func (s *Site) siteSettings(ctx context.Context) *models.SiteSettings {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		slog.Warn("site settings unavailable", "error", err)
		return nil
	}
	return settings
}

// Home renders the homepage: hero from settings, featured products, and
// the latest featured posts. The three fetches run concurrently.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		settings *models.SiteSettings
		featured []models.Product
		posts    []models.BlogPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		settings = s.siteSettings(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		featured, err = s.products.Featured(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.blog.Featured(gctx, featuredLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("homepage fetch failed", "error", err)
		s.renderer.Error(w, settings)
		return
	}

	s.renderer.Page(w, http.StatusOK, "home", &render.PageData{
		Section:  "home",
		Settings: settings,
		Data: map[string]any{
			"FeaturedProducts": featured,
			"FeaturedPosts":    posts,
		},
	})
}

// Page renders a CMS-authored page by slug. It backs the catch-all
// route, so an unknown slug is an ordinary 404, not an error.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	page, err := s.pages.BySlug(ctx, slug)
	if err != nil {
		slog.Error("page fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if page == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	section := ""
	if slug == "about" {
		section = "about"
	}

	s.renderer.Page(w, http.StatusOK, "page", &render.PageData{
		Title:    page.Metadata.Title,
		Section:  section,
		Settings: settings,
		Data:     map[string]any{"Page": page},
	})
}

// Health reports process liveness for load balancer checks.
func (s *Site) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
