package relevance

import (
	"strings"

	"goldenhills/internal/models"
)

// ByCategory retains products whose category key equals key exactly.
// An empty key returns the input unchanged.
func ByCategory(products []models.Product, key string) []models.Product {
	if key == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.Metadata.Category.Key == key {
			out = append(out, p)
		}
	}
	return out
}

// Search retains products whose name, description, or category label
// contain the query, case-insensitively. The query is trimmed first;
// an empty or whitespace-only query returns the input unchanged.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// matchesQuery checks a single product against an already-normalized
// query string. The fall-back to the base title mirrors how product
// cards render when the name field is blank.
func matchesQuery(p models.Product, q string) bool {
	name := p.Metadata.Name
	if name == "" {
		name = p.Title
	}
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(p.Metadata.Description), q) ||
		strings.Contains(strings.ToLower(p.Metadata.Category.Value), q)
}

// CategoryCounts tallies products per category key, for the filter bar
// counters.
func CategoryCounts(products []models.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if key := p.Metadata.Category.Key; key != "" {
			counts[key]++
		}
	}
	return counts
}
