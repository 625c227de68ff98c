// store_test.go provides a shared fake content-store server for all
// store tests. The fake understands the objects query contract used by
// the cosmic client: it filters fixtures by type, slug, id, and
// metadata equality, and answers with the list or single-object
// envelope the way the real API does.
package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"goldenhills/internal/cosmic"
)

// fixture is one canned content object served by the fake store.
type fixture struct {
	Type     string         `json:"-"`
	ID       string         `json:"id"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Metadata map[string]any `json:"metadata"`
}

// fakeContent is an httptest server acting as the remote content store.
type fakeContent struct {
	srv      *httptest.Server
	fixtures []fixture

	// failWith forces every response to the given status when non-zero.
	failWith int
}

// newFakeContent starts a fake content store serving the given
// fixtures. It shuts down with the test.
func newFakeContent(t *testing.T, fixtures ...fixture) *fakeContent {
	t.Helper()
	f := &fakeContent{fixtures: fixtures}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// client returns a cosmic client pointed at the fake.
func (f *fakeContent) client() *cosmic.Client {
	return cosmic.New(cosmic.Config{BucketSlug: "farm", ReadKey: "test", BaseURL: f.srv.URL})
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
		if f.matches(fx, selector) {
			matched = append(matched, fx)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	// Slug and id selectors (and the settings singleton) are
	// single-object lookups: answer with the single envelope, 404 when
	// nothing matched, like the real API.
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

// matches applies the selector's type, slug, id, and metadata.* equality
// filters to one fixture.
func (f *fakeContent) matches(fx fixture, selector map[string]any) bool {
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
		default: // metadata.<field>
			const prefix = "metadata."
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				if fx.Metadata[key[len(prefix):]] != want {
					return false
				}
			}
		}
	}
	return true
}

// --- Fixture builders ---

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
