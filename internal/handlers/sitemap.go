package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap lists every reachable page: fixed routes, products, CMS
// pages, and all blog entities. Fetch failures skip that section
// rather than failing the whole map.
func (s *Site) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	urls := []sitemapURL{
		{Loc: s.absoluteURL("/")},
		{Loc: s.absoluteURL("/products")},
		{Loc: s.absoluteURL("/blog")},
		{Loc: s.absoluteURL("/contact")},
	}

	if products, err := s.products.All(ctx); err == nil {
		for _, p := range products {
			urls = append(urls, sitemapURL{Loc: s.absoluteURL("/products/" + p.Slug)})
		}
	} else {
		slog.Warn("sitemap products unavailable", "error", err)
	}

	if pages, err := s.pages.All(ctx); err == nil {
		for _, p := range pages {
			urls = append(urls, sitemapURL{Loc: s.absoluteURL("/" + p.Slug)})
		}
	} else {
		slog.Warn("sitemap pages unavailable", "error", err)
	}

	if posts, _, err := s.blog.Posts(ctx, 0, 0); err == nil {
		for _, p := range posts {
			entry := sitemapURL{Loc: s.absoluteURL("/blog/" + p.Slug)}
			if t := p.PublishedTime(); !t.IsZero() {
				entry.LastMod = t.Format("2006-01-02")
			}
			urls = append(urls, entry)
		}
	} else {
		slog.Warn("sitemap posts unavailable", "error", err)
	}

	if categories, err := s.blog.Categories(ctx); err == nil {
		for _, c := range categories {
			urls = append(urls, sitemapURL{Loc: s.absoluteURL("/blog/category/" + c.Slug)})
		}
	} else {
		slog.Warn("sitemap categories unavailable", "error", err)
	}

	if tags, err := s.blog.Tags(ctx); err == nil {
		for _, t := range tags {
			urls = append(urls, sitemapURL{Loc: s.absoluteURL("/blog/tag/" + t.Slug)})
		}
	} else {
		slog.Warn("sitemap tags unavailable", "error", err)
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(sitemap); err != nil {
		slog.Error("sitemap encode failed", "error", err)
	}
}
