package store

import (
	"context"

	"goldenhills/internal/cosmic"
	"goldenhills/internal/models"
	"goldenhills/internal/relevance"
)

const productKind = "products"

// ProductStore reads catalog products from the content store.
type ProductStore struct {
	client *cosmic.Client
}

// NewProductStore creates a ProductStore on the given client.
func NewProductStore(client *cosmic.Client) *ProductStore {
	return &ProductStore{client: client}
}

// All returns every product in remote-store order. A store with no
// products returns an empty slice, not an error.
func (s *ProductStore) All(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, "list", nil)
}

// Featured returns products flagged as featured, in remote-store order.
func (s *ProductStore) Featured(ctx context.Context) ([]models.Product, error) {
	return s.find(ctx, "list featured", map[string]any{"featured": true})
}

// BySlug returns the product with the given slug, or nil when no such
// product exists.
func (s *ProductStore) BySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  productKind,
		Slug:  slug,
		Props: defaultProps,
		Depth: 1,
	}, &product)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: productKind, Op: "get by slug", Err: err}
	}
	if err := product.Validate(); err != nil {
		return nil, &RetrievalError{Kind: productKind, Op: "get by slug", Err: err}
	}
	return &product, nil
}

// ByCategory returns products whose category key equals key exactly.
// Derived from All; the content store is not queried with the predicate.
func (s *ProductStore) ByCategory(ctx context.Context, key string) ([]models.Product, error) {
	products, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return relevance.ByCategory(products, key), nil
}

// Search returns products whose name, description, or category label
// contain the query, case-insensitively. Derived from All.
func (s *ProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return relevance.Search(products, query), nil
}

// find runs one list query and validates the decoded products.
func (s *ProductStore) find(ctx context.Context, op string, meta map[string]any) ([]models.Product, error) {
	var products []models.Product
	_, err := s.client.Find(ctx, cosmic.Query{
		Type:  productKind,
		Meta:  meta,
		Props: defaultProps,
		Depth: 1,
	}, &products)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: productKind, Op: op, Err: err}
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, &RetrievalError{Kind: productKind, Op: op, Err: err}
		}
	}
	return products, nil
}
