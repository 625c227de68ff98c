package store

import (
	"context"
	"log/slog"

	"goldenhills/internal/cosmic"
	"goldenhills/internal/models"
	"goldenhills/internal/relevance"
)

// Entity kinds served by the blog store.
const (
	postKind     = "blog-posts"
	categoryKind = "blog-categories"
	tagKind      = "blog-tags"
)

// BlogStore reads blog posts, categories, and tags.
//
// Posts and Featured carry a looser failure policy than every other
// operation: when degradeOnError is set they swallow remote failures
// and return an empty listing with a logged warning, so one flaky
// fetch cannot abort rendering of pages that merely embed a post list.
// Single-post lookups and the category/tag/author listings keep the
// strict policy.
type BlogStore struct {
	client         *cosmic.Client
	degradeOnError bool
}

// NewBlogStore creates a BlogStore on the given client. degradeOnError
// selects the loose failure policy for the two listing operations.
func NewBlogStore(client *cosmic.Client, degradeOnError bool) *BlogStore {
	return &BlogStore{client: client, degradeOnError: degradeOnError}
}

// Posts returns one page of posts sorted by published date descending,
// along with the total post count for pagination. A non-positive limit
// returns everything after skip. Remote failures degrade to an empty
// listing when the store is configured to do so.
func (s *BlogStore) Posts(ctx context.Context, limit, skip int) ([]models.BlogPost, int, error) {
	posts, err := s.fetchAll(ctx, "list")
	if err != nil {
		if s.degradeOnError {
			slog.Warn("blog post listing degraded to empty", "error", err)
			return nil, 0, nil
		}
		return nil, 0, err
	}

	relevance.SortPostsByDate(posts)
	total := len(posts)

	start := skip
	if start > total {
		start = total
	}
	end := total
	if limit > 0 && start+limit < total {
		end = start + limit
	}
	return posts[start:end], total, nil
}

// Featured returns up to limit featured posts, newest first. Subject to
// the same degrade-on-error policy as Posts.
func (s *BlogStore) Featured(ctx context.Context, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  postKind,
		Meta:  map[string]any{"featured": true},
		Props: defaultProps,
		Depth: 1,
	}, &posts)
	if err != nil && !isAbsence(err) {
		retErr := &RetrievalError{Kind: postKind, Op: "list featured", Err: err}
		if s.degradeOnError {
			slog.Warn("featured post listing degraded to empty", "error", retErr)
			return nil, nil
		}
		return nil, retErr
	}
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			retErr := &RetrievalError{Kind: postKind, Op: "list featured", Err: err}
			if s.degradeOnError {
				slog.Warn("featured post listing degraded to empty", "error", retErr)
				return nil, nil
			}
			return nil, retErr
		}
	}

	relevance.SortPostsByDate(posts)
	return truncate(posts, limit), nil
}

// BySlug returns the post with the given slug, or nil when absent.
func (s *BlogStore) BySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  postKind,
		Slug:  slug,
		Props: defaultProps,
		Depth: 1,
	}, &post)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: postKind, Op: "get by slug", Err: err}
	}
	if err := post.Validate(); err != nil {
		return nil, &RetrievalError{Kind: postKind, Op: "get by slug", Err: err}
	}
	return &post, nil
}

// ByCategory returns up to limit posts carrying the category with the
// given slug, newest first. Matching runs over the category copies
// embedded on each post; the category itself is never re-fetched.
func (s *BlogStore) ByCategory(ctx context.Context, categorySlug string, limit int) ([]models.BlogPost, error) {
	return s.filtered(ctx, "list by category", limit, func(p models.BlogPost) bool {
		for _, c := range p.Metadata.Categories {
			if c.Slug == categorySlug {
				return true
			}
		}
		return false
	})
}

// ByTag returns up to limit posts carrying the tag with the given slug,
// newest first.
func (s *BlogStore) ByTag(ctx context.Context, tagSlug string, limit int) ([]models.BlogPost, error) {
	return s.filtered(ctx, "list by tag", limit, func(p models.BlogPost) bool {
		for _, t := range p.Metadata.Tags {
			if t.Slug == tagSlug {
				return true
			}
		}
		return false
	})
}

// ByAuthor returns up to limit posts whose embedded author has the
// given slug, newest first.
func (s *BlogStore) ByAuthor(ctx context.Context, authorSlug string, limit int) ([]models.BlogPost, error) {
	return s.filtered(ctx, "list by author", limit, func(p models.BlogPost) bool {
		return p.Metadata.Author != nil && p.Metadata.Author.Slug == authorSlug
	})
}

// Related returns up to limit posts ranked by shared categories and
// tags with the post identified by id. A missing source post yields an
// empty result, not an error.
func (s *BlogStore) Related(ctx context.Context, id string, limit int) ([]models.BlogPost, error) {
	var source models.BlogPost
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  postKind,
		ID:    id,
		Props: []string{"id", "title", "slug", "metadata"},
		Depth: 1,
	}, &source)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: postKind, Op: "list related", Err: err}
	}

	candidates, err := s.fetchAll(ctx, "list related")
	if err != nil {
		return nil, err
	}
	return relevance.Related(source, candidates, limit), nil
}

// Categories returns every blog category in remote-store order.
func (s *BlogStore) Categories(ctx context.Context) ([]models.BlogCategory, error) {
	var cats []models.BlogCategory
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  categoryKind,
		Props: []string{"id", "title", "slug", "metadata"},
	}, &cats)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: categoryKind, Op: "list", Err: err}
	}
	return cats, nil
}

// CategoryBySlug returns the blog category with the given slug, or nil
// when absent.
func (s *BlogStore) CategoryBySlug(ctx context.Context, slug string) (*models.BlogCategory, error) {
	var cat models.BlogCategory
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  categoryKind,
		Slug:  slug,
		Props: []string{"id", "title", "slug", "metadata"},
	}, &cat)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: categoryKind, Op: "get by slug", Err: err}
	}
	return &cat, nil
}

// Tags returns every blog tag in remote-store order.
func (s *BlogStore) Tags(ctx context.Context) ([]models.BlogTag, error) {
	var tags []models.BlogTag
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  tagKind,
		Props: []string{"id", "title", "slug", "metadata"},
	}, &tags)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: tagKind, Op: "list", Err: err}
	}
	return tags, nil
}

// TagBySlug returns the blog tag with the given slug, or nil when absent.
func (s *BlogStore) TagBySlug(ctx context.Context, slug string) (*models.BlogTag, error) {
	var tag models.BlogTag
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  tagKind,
		Slug:  slug,
		Props: []string{"id", "title", "slug", "metadata"},
	}, &tag)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: tagKind, Op: "get by slug", Err: err}
	}
	return &tag, nil
}

// fetchAll fetches every post with relations expanded and validates the
// decoded objects.
func (s *BlogStore) fetchAll(ctx context.Context, op string) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  postKind,
		Props: defaultProps,
		Depth: 1,
	}, &posts)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: postKind, Op: op, Err: err}
	}
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return nil, &RetrievalError{Kind: postKind, Op: op, Err: err}
		}
	}
	return posts, nil
}

// filtered fetches all posts, keeps those matching the predicate, sorts
// newest-first, and truncates to limit.
func (s *BlogStore) filtered(ctx context.Context, op string, limit int, keep func(models.BlogPost) bool) ([]models.BlogPost, error) {
	posts, err := s.fetchAll(ctx, op)
	if err != nil {
		return nil, err
	}
	var matched []models.BlogPost
	for _, p := range posts {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	relevance.SortPostsByDate(matched)
	return truncate(matched, limit), nil
}

// truncate caps posts at limit; a non-positive limit means no cap.
func truncate(posts []models.BlogPost, limit int) []models.BlogPost {
	if limit > 0 && len(posts) > limit {
		return posts[:limit]
	}
	return posts
}
