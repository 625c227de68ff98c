package store

import (
	"context"

	"goldenhills/internal/cosmic"
	"goldenhills/internal/models"
)

const pageKind = "pages"

// PageStore reads free-form CMS pages from the content store.
type PageStore struct {
	client *cosmic.Client
}

// NewPageStore creates a PageStore on the given client.
func NewPageStore(client *cosmic.Client) *PageStore {
	return &PageStore{client: client}
}

// All returns every page in remote-store order.
func (s *PageStore) All(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  pageKind,
		Props: defaultProps,
		Depth: 1,
	}, &pages)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: pageKind, Op: "list", Err: err}
	}
	return pages, nil
}

// BySlug returns the page with the given slug, or nil when absent.
func (s *PageStore) BySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  pageKind,
		Slug:  slug,
		Props: defaultProps,
		Depth: 1,
	}, &page)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: pageKind, Op: "get by slug", Err: err}
	}
	return &page, nil
}
