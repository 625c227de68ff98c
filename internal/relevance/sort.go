package relevance

import (
	"sort"

	"goldenhills/internal/models"
)

// SortPostsByDate orders posts newest-first by published date, in
// place. Posts sharing a date keep their original relative order, and a
// missing or unparseable date sorts as the earliest possible timestamp
// (the post stays in the result, at the end).
func SortPostsByDate(posts []models.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedTime().After(posts[j].PublishedTime())
	})
}
