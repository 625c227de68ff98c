package store

import (
	"context"

	"goldenhills/internal/cosmic"
	"goldenhills/internal/models"
)

const authorKind = "authors"

// AuthorStore reads blog author profiles from the content store.
type AuthorStore struct {
	client *cosmic.Client
}

// NewAuthorStore creates an AuthorStore on the given client.
func NewAuthorStore(client *cosmic.Client) *AuthorStore {
	return &AuthorStore{client: client}
}

// BySlug returns the author with the given slug, or nil when absent.
func (s *AuthorStore) BySlug(ctx context.Context, slug string) (*models.Author, error) {
	var author models.Author
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  authorKind,
		Slug:  slug,
		Props: []string{"id", "title", "slug", "metadata"},
	}, &author)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: authorKind, Op: "get by slug", Err: err}
	}
	return &author, nil
}
