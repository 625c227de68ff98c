package models

// CategoryInfo describes one of the fixed product categories shown in
// the catalog filter bar.
type CategoryInfo struct {
	Key         string
	Label       string
	Description string
}

// categories is the closed set of product categories. It is maintained
// here, not in the content store; a product whose category key falls
// outside this list simply never matches a filter.
var categories = []CategoryInfo{
	{Key: "beef", Label: "Grass-Fed Beef", Description: "100% grass-fed and finished beef"},
	{Key: "dairy", Label: "Dairy", Description: "Raw milk and artisan cheeses"},
	{Key: "eggs", Label: "Eggs", Description: "Pasture-raised eggs"},
	{Key: "pantry", Label: "Pantry", Description: "Honey, preserves, and more"},
	{Key: "goods", Label: "Farm Goods", Description: "Handcrafted farm accessories"},
}

// Categories returns the fixed product category list in display order.
// The returned slice is shared; callers must not modify it.
func Categories() []CategoryInfo {
	return categories
}

// CategoryByKey looks up a fixed category by its key. The second return
// value is false when the key is not one of the five known categories.
func CategoryByKey(key string) (CategoryInfo, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryInfo{}, false
}
