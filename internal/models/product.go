package models

import "fmt"

// CategoryOption is the category select value stored on a product:
// a stable key plus the human-readable label shown on the site.
type CategoryOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ProductMetadata holds the product-specific fields. Price is a display
// string, never used for arithmetic. Description is optional Markdown.
type ProductMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       string         `json:"price"`
	Category    CategoryOption `json:"category"`
	Featured    bool           `json:"featured,omitempty"`
	Image       *File          `json:"image,omitempty"`
}

// Product is a catalog item sold by the farm.
type Product struct {
	Object
	Metadata ProductMetadata `json:"metadata"`
}

// DisplayName returns the marketing name, falling back to the object
// title for entries created before the name field existed.
func (p Product) DisplayName() string {
	if p.Metadata.Name != "" {
		return p.Metadata.Name
	}
	return p.Title
}

// Validate checks that the required metadata fields are present.
// Called by the store right after decoding so a misshapen object fails
// fast instead of rendering half-empty. The name field is not required:
// DisplayName covers a blank one with the object title.
func (p *Product) Validate() error {
	if p.Metadata.Price == "" {
		return fmt.Errorf("product %q: missing price", p.Slug)
	}
	if p.Metadata.Category.Key == "" {
		return fmt.Errorf("product %q: missing category key", p.Slug)
	}
	return nil
}
