// handler_test.go provides shared test infrastructure for the site
// handler tests: a fake content-store server plus a fully wired Site
// with its routes mounted on a chi router.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"goldenhills/internal/contact"
	"goldenhills/internal/cosmic"
	"goldenhills/internal/render"
	"goldenhills/internal/store"
)

// fixture is one canned content object served by the fake store.
type fixture struct {
	Type     string         `json:"-"`
	ID       string         `json:"id"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Metadata map[string]any `json:"metadata"`
}

// fakeContent is an httptest server acting as the remote content
// store. It understands the objects query contract used by the cosmic
// client: type, slug, id, and metadata equality selectors.
type fakeContent struct {
	srv      *httptest.Server
	fixtures []fixture
	failWith int
}

func newFakeContent(t *testing.T, fixtures ...fixture) *fakeContent {
	t.Helper()
	f := &fakeContent{fixtures: fixtures}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeContent) handle(w http.ResponseWriter, r *http.Request) {
	if f.failWith != 0 {
		http.Error(w, `{"message":"boom"}`, f.failWith)
		return
	}

	var selector map[string]any
	if err := json.Unmarshal([]byte(r.URL.Query().Get("query")), &selector); err != nil {
		http.Error(w, `{"message":"bad query"}`, http.StatusBadRequest)
		return
	}

	var matched []fixture
	for _, fx := range f.fixtures {
		if matches(fx, selector) {
			matched = append(matched, fx)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	_, bySlug := selector["slug"]
	_, byID := selector["id"]
	if bySlug || byID || selector["type"] == "site-settings" {
		if len(matched) == 0 {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"No object found"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"object": matched[0]})
		return
	}

	if len(matched) == 0 {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No objects found"}`))
		return
	}
	json.NewEncoder(w).Encode(map[string]any{"objects": matched, "total": len(matched)})
}

func matches(fx fixture, selector map[string]any) bool {
	for key, want := range selector {
		switch key {
		case "type":
			if fx.Type != want {
				return false
			}
		case "slug":
			if fx.Slug != want {
				return false
			}
		case "id":
			if fx.ID != want {
				return false
			}
		default:
			const prefix = "metadata."
			if strings.HasPrefix(key, prefix) && fx.Metadata[key[len(prefix):]] != want {
				return false
			}
		}
	}
	return true
}

// --- Fixture builders ---

func settingsFixture() fixture {
	return fixture{
		Type:  "site-settings",
		ID:    "settings-1",
		Slug:  "site-settings",
		Title: "Site Settings",
		Metadata: map[string]any{
			"ranch_name": "Golden Hills Farm",
			"tagline":    "Pasture-raised goodness",
			"email":      "howdy@goldenhills.example",
		},
	}
}

func productFixture(slug, name, categoryKey, categoryLabel string, featured bool) fixture {
	return fixture{
		Type:  "products",
		ID:    "prod-" + slug,
		Slug:  slug,
		Title: name,
		Metadata: map[string]any{
			"name":     name,
			"price":    "$12.00",
			"category": map[string]any{"key": categoryKey, "value": categoryLabel},
			"featured": featured,
		},
	}
}

func pageFixture(slug, title, content string) fixture {
	return fixture{
		Type:  "pages",
		ID:    "page-" + slug,
		Slug:  slug,
		Title: title,
		Metadata: map[string]any{
			"title":   title,
			"content": content,
		},
	}
}

func postFixture(slug, title, published string, featured bool) fixture {
	return fixture{
		Type:  "blog-posts",
		ID:    "post-" + slug,
		Slug:  slug,
		Title: title,
		Metadata: map[string]any{
			"title":          title,
			"excerpt":        "excerpt for " + slug,
			"content":        "content for " + slug,
			"published_date": published,
			"featured":       featured,
		},
	}
}

func authorFixture(slug, name string) fixture {
	return fixture{
		Type:  "authors",
		ID:    "author-" + slug,
		Slug:  slug,
		Title: name,
		Metadata: map[string]any{
			"name": name,
		},
	}
}

func categoryFixture(slug, name string) fixture {
	return fixture{
		Type:  "blog-categories",
		ID:    "cat-" + slug,
		Slug:  slug,
		Title: name,
		Metadata: map[string]any{
			"name": name,
		},
	}
}

func tagFixture(slug, name string) fixture {
	return fixture{
		Type:  "blog-tags",
		ID:    "tag-" + slug,
		Slug:  slug,
		Title: name,
		Metadata: map[string]any{
			"name": name,
		},
	}
}

// withRelations attaches embedded author/category/tag copies to a post
// fixture, the way depth-expanded responses carry them.
func withRelations(fx fixture, author string, categorySlugs, tagSlugs []string) fixture {
	if author != "" {
		fx.Metadata["author"] = map[string]any{
			"id":       "author-" + author,
			"slug":     author,
			"title":    author,
			"metadata": map[string]any{"name": author},
		}
	}
	var cats []map[string]any
	for _, c := range categorySlugs {
		cats = append(cats, map[string]any{
			"id": "cat-" + c, "slug": c, "title": c,
			"metadata": map[string]any{"name": c},
		})
	}
	if cats != nil {
		fx.Metadata["categories"] = cats
	}
	var tags []map[string]any
	for _, tg := range tagSlugs {
		tags = append(tags, map[string]any{
			"id": "tag-" + tg, "slug": tg, "title": tg,
			"metadata": map[string]any{"name": tg},
		})
	}
	if tags != nil {
		fx.Metadata["tags"] = tags
	}
	return fx
}

// --- Site under test ---

// testSite wires a Site against a fake content store and mounts its
// routes. webhookURL may be empty for tests that don't submit the
// contact form.
func testSite(t *testing.T, webhookURL string, fixtures ...fixture) (*Site, chi.Router, *fakeContent) {
	t.Helper()

	fake := newFakeContent(t, fixtures...)
	client := cosmic.New(cosmic.Config{BucketSlug: "farm", ReadKey: "test", BaseURL: fake.srv.URL})

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	site := NewSite(
		renderer,
		store.NewProductStore(client),
		store.NewPageStore(client),
		store.NewSettingsStore(client),
		store.NewAuthorStore(client),
		store.NewBlogStore(client, false),
		contact.NewNotifier(webhookURL),
		"https://goldenhills.example",
	)

	r := chi.NewRouter()
	r.Get("/", site.Home)
	r.Get("/health", site.Health)
	r.Get("/rss.xml", site.RSS)
	r.Get("/sitemap.xml", site.Sitemap)
	r.Get("/products", site.Products)
	r.Get("/products/{slug}", site.Product)
	r.Get("/blog", site.Blog)
	r.Get("/blog/category/{slug}", site.BlogCategory)
	r.Get("/blog/tag/{slug}", site.BlogTag)
	r.Get("/blog/author/{slug}", site.BlogAuthor)
	r.Get("/blog/{slug}", site.BlogPost)
	r.Get("/contact", site.Contact)
	r.Post("/contact", site.ContactSubmit)
	r.Get("/{slug}", site.Page)

	return site, r, fake
}

// get runs a GET through the router and returns the recorder.
func get(t *testing.T, r chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
