package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"goldenhills/internal/models"
	"goldenhills/internal/relevance"
	"goldenhills/internal/render"
)

// categoryLink is one entry in the products filter bar.
type categoryLink struct {
	Key    string
	Label  string
	Count  int
	URL    string
	Active bool
}

// Products renders the catalog with category and search filters applied
// from the query string. The category filter narrows first, then the
// search query narrows the result further. Counts in the filter bar
// always reflect the full catalog, so switching categories stays
// predictable mid-search.
func (s *Site) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings := s.siteSettings(ctx)

	category := r.URL.Query().Get("category")
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	all, err := s.products.All(ctx)
	if err != nil {
		slog.Error("product listing failed", "error", err)
		s.renderer.Error(w, settings)
		return
	}

	filtered := relevance.Search(relevance.ByCategory(all, category), search)
	counts := relevance.CategoryCounts(all)

	links := make([]categoryLink, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		links = append(links, categoryLink{
			Key:    c.Key,
			Label:  c.Label,
			Count:  counts[c.Key],
			URL:    BuildProductsURL(search, c.Key),
			Active: c.Key == category,
		})
	}

	s.renderer.Page(w, http.StatusOK, "products", &render.PageData{
		Title:    "Products",
		Section:  "products",
		Settings: settings,
		Data: map[string]any{
			"Products":       filtered,
			"Categories":     links,
			"AllURL":         BuildProductsURL(search, ""),
			"ActiveCategory": category,
			"Search":         search,
			"TotalCount":     len(all),
			"ResultCount":    len(filtered),
		},
	})
}

// Product renders a single product page with others from the same
// category as suggestions.
func (s *Site) Product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	product, err := s.products.BySlug(ctx, slug)
	if err != nil {
		slog.Error("product fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if product == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	related, err := s.products.ByCategory(ctx, product.Metadata.Category.Key)
	if err != nil {
		slog.Warn("related products unavailable", "slug", slug, "error", err)
		related = nil
	}
	related = withoutProduct(related, product.ID)
	if len(related) > relatedLimit {
		related = related[:relatedLimit]
	}

	s.renderer.Page(w, http.StatusOK, "product", &render.PageData{
		Title:       product.DisplayName(),
		Description: firstLine(product.Metadata.Description),
		Section:     "products",
		Settings:    settings,
		Data: map[string]any{
			"Product": product,
			"Related": related,
		},
	})
}

// withoutProduct drops the product with the given id from the slice.
func withoutProduct(products []models.Product, id string) []models.Product {
	out := products[:0]
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// firstLine returns the first line of a markdown body, for use as a
// meta description.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
