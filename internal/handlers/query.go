package handlers

import (
	"net/http"
	"net/url"
	"strconv"
)

// ParsePage reads the page query parameter, defaulting to 1. Garbage
// and non-positive values also fall back to 1.
func ParsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// BuildProductsURL builds a catalog URL carrying the given search query
// and category key. Empty values are omitted entirely so cleared
// filters leave no stale parameters behind.
func BuildProductsURL(search, category string) string {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}
	if len(q) == 0 {
		return "/products"
	}
	return "/products?" + q.Encode()
}
