// Package render provides HTML template rendering for the public site.
// Every page template is paired with the base layout; there are no
// standalone templates.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"goldenhills/internal/markdown"
	"goldenhills/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title       string               // Page title for <title> tag
	Description string               // Meta description (empty omits the tag)
	Section     string               // Active nav section (e.g., "products", "blog")
	Settings    *models.SiteSettings // Site-wide settings (nil when unavailable)
	Data        map[string]any       // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout.
// When devMode is true, templates use CDN-hosted TailwindCSS; when false,
// they reference the compiled local stylesheet.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// markdown renders CMS-authored markdown to trusted HTML.
			"markdown": func(src string) template.HTML {
				out, err := markdown.ToHTML(src)
				if err != nil {
					return template.HTML("")
				}
				return template.HTML(out)
			},
			// formatDate renders a publish date for listings and posts.
			// The zero time (missing or unparseable date) renders empty.
			"formatDate": func(t time.Time) string {
				if t.IsZero() {
					return ""
				}
				return t.Format("January 2, 2006")
			},
			// categoryLabel resolves a category key to its display label.
			"categoryLabel": func(key string) string {
				if c, ok := models.CategoryByKey(key); ok {
					return c.Label
				}
				return key
			},
			"activeClass": func(current, target string) string {
				if current == target {
					return "text-amber-800 font-semibold"
				}
				return "text-stone-600 hover:text-amber-800"
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// plural appends "s" for counts other than one.
			"plural": func(n int, word string) string {
				if n == 1 {
					return word
				}
				return word + "s"
			},
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout and the
	// shared partials (post cards, product cards).
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || name == "partials.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/partials.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// Page renders a full site page with the given status code.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	if data.Data == nil {
		data.Data = map[string]any{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		// Headers are already written; all we can do is log via the caller.
		fmt.Fprintf(w, "<!-- template error: %v -->", err)
	}
}

// NotFound renders the site-wide 404 page.
func (rn *Renderer) NotFound(w http.ResponseWriter, settings *models.SiteSettings) {
	rn.Page(w, http.StatusNotFound, "notfound", &PageData{
		Title:    "Page Not Found",
		Settings: settings,
	})
}

// Error renders the site-wide 500 page.
func (rn *Renderer) Error(w http.ResponseWriter, settings *models.SiteSettings) {
	rn.Page(w, http.StatusInternalServerError, "error", &PageData{
		Title:    "Something Went Wrong",
		Settings: settings,
	})
}
