package models

// PageMetadata holds the fields of a free-form CMS page.
// Content is optional Markdown.
type PageMetadata struct {
	Title     string `json:"title"`
	HeroImage *File  `json:"hero_image,omitempty"`
	Content   string `json:"content,omitempty"`
}

// Page is a standalone content page (about, practices, visit-us, ...).
type Page struct {
	Object
	Metadata PageMetadata `json:"metadata"`
}
