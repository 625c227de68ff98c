package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goldenhills/internal/relevance"
	"goldenhills/internal/render"
)

// Blog renders the paginated post index, newest first.
func (s *Site) Blog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	settings := s.siteSettings(ctx)

	page := ParsePage(r)
	skip := (page - 1) * blogPageSize

	posts, total, err := s.blog.Posts(ctx, blogPageSize, skip)
	if err != nil {
		slog.Error("blog listing failed", "error", err)
		s.renderer.Error(w, settings)
		return
	}

	s.renderer.Page(w, http.StatusOK, "blog", &render.PageData{
		Title:    "Blog",
		Section:  "blog",
		Settings: settings,
		Data: map[string]any{
			"Posts":      posts,
			"Pagination": relevance.Paginate(total, page, blogPageSize),
		},
	})
}

// BlogPost renders a single post with related posts beneath it.
func (s *Site) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	post, err := s.blog.BySlug(ctx, slug)
	if err != nil {
		slog.Error("blog post fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if post == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	related, err := s.blog.Related(ctx, post.ID, relatedLimit)
	if err != nil {
		slog.Warn("related posts unavailable", "slug", slug, "error", err)
		related = nil
	}

	s.renderer.Page(w, http.StatusOK, "post", &render.PageData{
		Title:       post.Metadata.Title,
		Description: post.Metadata.MetaDescription,
		Section:     "blog",
		Settings:    settings,
		Data: map[string]any{
			"Post":    post,
			"Related": related,
		},
	})
}

// BlogCategory renders the posts filed under a blog category. An
// unknown category slug is a 404; a known category with no posts
// renders an empty listing.
func (s *Site) BlogCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	category, err := s.blog.CategoryBySlug(ctx, slug)
	if err != nil {
		slog.Error("blog category fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if category == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	posts, err := s.blog.ByCategory(ctx, slug, listingLimit)
	if err != nil {
		slog.Error("blog category listing failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}

	s.renderer.Page(w, http.StatusOK, "blog_category", &render.PageData{
		Title:       category.Metadata.Name,
		Description: category.Metadata.Description,
		Section:     "blog",
		Settings:    settings,
		Data: map[string]any{
			"Category": category,
			"Posts":    posts,
		},
	})
}

// BlogTag renders the posts carrying a tag.
func (s *Site) BlogTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	tag, err := s.blog.TagBySlug(ctx, slug)
	if err != nil {
		slog.Error("blog tag fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if tag == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	posts, err := s.blog.ByTag(ctx, slug, listingLimit)
	if err != nil {
		slog.Error("blog tag listing failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}

	s.renderer.Page(w, http.StatusOK, "blog_tag", &render.PageData{
		Title:    tag.Metadata.Name,
		Section:  "blog",
		Settings: settings,
		Data: map[string]any{
			"Tag":   tag,
			"Posts": posts,
		},
	})
}

// BlogAuthor renders an author's profile and their posts.
func (s *Site) BlogAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	settings := s.siteSettings(ctx)

	author, err := s.authors.BySlug(ctx, slug)
	if err != nil {
		slog.Error("author fetch failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}
	if author == nil {
		s.renderer.NotFound(w, settings)
		return
	}

	posts, err := s.blog.ByAuthor(ctx, slug, listingLimit)
	if err != nil {
		slog.Error("author listing failed", "slug", slug, "error", err)
		s.renderer.Error(w, settings)
		return
	}

	s.renderer.Page(w, http.StatusOK, "blog_author", &render.PageData{
		Title:    author.Metadata.Name,
		Section:  "blog",
		Settings: settings,
		Data: map[string]any{
			"Author": author,
			"Posts":  posts,
		},
	})
}
