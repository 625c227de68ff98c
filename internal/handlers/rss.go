package handlers

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"time"
)

// feedItemLimit caps the number of posts in the RSS feed.
const feedItemLimit = 20

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// RSS serves the blog feed, newest posts first.
func (s *Site) RSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, _, err := s.blog.Posts(ctx, feedItemLimit, 0)
	if err != nil {
		slog.Error("rss feed failed", "error", err)
		http.Error(w, "feed unavailable", http.StatusInternalServerError)
		return
	}

	title := "Golden Hills Farm"
	description := ""
	if settings := s.siteSettings(ctx); settings != nil {
		title = settings.Metadata.RanchName
		description = settings.Metadata.Tagline
	}

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := s.absoluteURL("/blog/" + p.Slug)
		pubDate := ""
		if t := p.PublishedTime(); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       p.Metadata.Title,
			Link:        postURL,
			Description: p.Metadata.Excerpt,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        s.siteURL,
			Description: description,
			Items:       items,
		},
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(feed); err != nil {
		slog.Error("rss encode failed", "error", err)
	}
}

// absoluteURL joins a site path onto the configured base URL.
func (s *Site) absoluteURL(path string) string {
	base := s.siteURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + path
}
