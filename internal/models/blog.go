package models

import (
	"fmt"
	"time"
)

// AuthorMetadata holds the fields of a blog author profile.
type AuthorMetadata struct {
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Photo *File  `json:"photo,omitempty"`
	Email string `json:"email,omitempty"`
}

// Author is a blog post author.
type Author struct {
	Object
	Metadata AuthorMetadata `json:"metadata"`
}

// BlogCategoryMetadata holds the fields of a blog category.
type BlogCategoryMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BlogCategory groups related blog posts.
type BlogCategory struct {
	Object
	Metadata BlogCategoryMetadata `json:"metadata"`
}

// BlogTagMetadata holds the fields of a blog tag.
type BlogTagMetadata struct {
	Name string `json:"name"`
}

// BlogTag is a free-form blog post label.
type BlogTag struct {
	Object
	Metadata BlogTagMetadata `json:"metadata"`
}

// BlogPostMetadata holds the post fields. Author, Categories, and Tags
// are denormalized copies embedded by the content store at fetch time
// (relation expansion), never re-dereferenced by id in this codebase.
type BlogPostMetadata struct {
	Title           string         `json:"title"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content"`
	FeaturedImage   *File          `json:"featured_image,omitempty"`
	Author          *Author        `json:"author,omitempty"`
	Categories      []BlogCategory `json:"categories,omitempty"`
	Tags            []BlogTag      `json:"tags,omitempty"`
	PublishedDate   string         `json:"published_date"`
	Featured        bool           `json:"featured,omitempty"`
	MetaDescription string         `json:"meta_description,omitempty"`
}

// BlogPost is a published blog article.
type BlogPost struct {
	Object
	Metadata BlogPostMetadata `json:"metadata"`
}

// publishedDateLayouts lists the accepted published_date formats, most
// specific first. The store writes plain dates from its date picker but
// older entries carry full RFC 3339 timestamps.
var publishedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// PublishedTime parses the post's published_date. An absent or
// unparseable date returns the zero time, which sorts as the earliest
// possible timestamp; such posts stay in result sets, they just sort last.
func (p BlogPost) PublishedTime() time.Time {
	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, p.Metadata.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Validate checks that the required metadata fields are present.
func (p *BlogPost) Validate() error {
	if p.Metadata.Title == "" {
		return fmt.Errorf("blog post %q: missing title", p.Slug)
	}
	return nil
}
