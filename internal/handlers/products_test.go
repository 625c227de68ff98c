package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func catalogFixtures() []fixture {
	return []fixture{
		settingsFixture(),
		productFixture("ribeye-steak", "Ribeye Steak", "beef", "Grass-Fed Beef", true),
		productFixture("ground-beef", "Ground Beef", "beef", "Grass-Fed Beef", false),
		productFixture("cheddar", "Farmhouse Cheddar", "dairy", "Artisan Dairy", false),
		productFixture("free-range-eggs", "Free Range Eggs", "eggs", "Farm Fresh Eggs", false),
	}
}

func TestProductsListing(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, name := range []string{"Ribeye Steak", "Ground Beef", "Farmhouse Cheddar", "Free Range Eggs"} {
		if !strings.Contains(body, name) {
			t.Errorf("unfiltered listing should contain %q", name)
		}
	}
	if !strings.Contains(body, "4 products found") {
		t.Error("listing should report the result count")
	}
	// Filter bar counts come from the full catalog.
	if !strings.Contains(body, "All (4)") {
		t.Error("filter bar should count the whole catalog")
	}
}

func TestProductsCategoryFilter(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products?category=beef")
	body := w.Body.String()

	if !strings.Contains(body, "Ribeye Steak") || !strings.Contains(body, "Ground Beef") {
		t.Error("beef filter should keep both beef products")
	}
	if strings.Contains(body, "Farmhouse Cheddar") {
		t.Error("beef filter should drop dairy products")
	}
	if !strings.Contains(body, "2 products found") {
		t.Error("filtered count should reflect the narrowed listing")
	}
}

func TestProductsSearch(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	// Substring match is case-insensitive and hits names only here.
	w := get(t, r, "/products?search=STEAK")
	body := w.Body.String()

	if !strings.Contains(body, "Ribeye Steak") {
		t.Error("search should match case-insensitively")
	}
	if strings.Contains(body, "Farmhouse Cheddar") {
		t.Error("search should drop non-matching products")
	}
	if !strings.Contains(body, "1 product found") {
		t.Error("singular count should read \"1 product found\"")
	}
}

func TestProductsSearchWithinCategory(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products?category=beef&search=ground")
	body := w.Body.String()

	if !strings.Contains(body, "Ground Beef") {
		t.Error("combined filters should keep the matching product")
	}
	if strings.Contains(body, "Ribeye Steak") {
		t.Error("search should narrow within the category")
	}
	// Category links must carry the search query along.
	if !strings.Contains(body, "category=dairy&amp;search=ground") {
		t.Error("switching categories should preserve the search query")
	}
}

func TestProductsNoResults(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products?search=zzzz")
	body := w.Body.String()

	if !strings.Contains(body, "0 products found") {
		t.Error("empty result should report a zero count")
	}
	if !strings.Contains(body, "Clear filters") {
		t.Error("empty result should offer a way back to the full catalog")
	}
}

func TestProductsRemoteFailure(t *testing.T) {
	_, r, fake := testSite(t, "", catalogFixtures()...)
	fake.failWith = http.StatusInternalServerError

	w := get(t, r, "/products")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestProductDetail(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products/ribeye-steak")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Ribeye Steak") {
		t.Error("detail page should show the product name")
	}
	if !strings.Contains(body, "$12.00") {
		t.Error("detail page should show the price")
	}
	// Suggestions come from the same category, minus the product itself.
	if !strings.Contains(body, "Ground Beef") {
		t.Error("detail page should suggest other beef products")
	}
	if strings.Contains(body, "Farmhouse Cheddar") {
		t.Error("suggestions should stay within the category")
	}
	if strings.Contains(body, `href="/products/ribeye-steak"`) {
		t.Error("the product should not suggest itself")
	}
}

func TestProductDetailNotFound(t *testing.T) {
	_, r, _ := testSite(t, "", catalogFixtures()...)

	w := get(t, r, "/products/no-such-product")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
