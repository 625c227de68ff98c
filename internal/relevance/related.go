// Package relevance implements the in-memory operations layered on top
// of store results: related-post scoring, product filtering, date
// sorting, and pagination arithmetic. Everything here is pure and
// deterministic given a deterministic input order.
package relevance

import (
	"sort"

	"goldenhills/internal/models"
)

// Shared-attribute weights for related-post scoring. One shared
// category outranks two shared tags.
const (
	categoryWeight = 3
	tagWeight      = 1
)

// Related ranks candidates by how many categories and tags they share
// with source. The source post itself is excluded by id, candidates
// sharing nothing are dropped, and the rest are ordered by score
// descending, ties keeping their original order. At most limit posts
// are returned.
func Related(source models.BlogPost, candidates []models.BlogPost, limit int) []models.BlogPost {
	sourceCategories := make(map[string]bool, len(source.Metadata.Categories))
	for _, c := range source.Metadata.Categories {
		sourceCategories[c.ID] = true
	}
	sourceTags := make(map[string]bool, len(source.Metadata.Tags))
	for _, t := range source.Metadata.Tags {
		sourceTags[t.ID] = true
	}

	type scored struct {
		post  models.BlogPost
		score int
	}
	var ranked []scored
	for _, candidate := range candidates {
		if candidate.ID == source.ID {
			continue
		}
		score := 0
		for _, c := range candidate.Metadata.Categories {
			if sourceCategories[c.ID] {
				score += categoryWeight
			}
		}
		for _, t := range candidate.Metadata.Tags {
			if sourceTags[t.ID] {
				score += tagWeight
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{post: candidate, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]models.BlogPost, len(ranked))
	for i, r := range ranked {
		out[i] = r.post
	}
	return out
}
