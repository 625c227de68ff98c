// Package models defines the typed entities served by the remote content
// store. Every entity kind shares the same base object shape (id, slug,
// title, timestamps) with a kind-specific metadata struct. Metadata is
// decoded into concrete types at the store boundary rather than accessed
// as a loose map.
package models

// Object is the base shape shared by every content-store entity.
// ID is an opaque unique identifier; Slug is the URL-safe lookup key
// (unique per entity kind, enforced by the content store).
type Object struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// File is an uploaded media reference. ImgixURL points at the image
// service endpoint and accepts resizing query parameters.
type File struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}
