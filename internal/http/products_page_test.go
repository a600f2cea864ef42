package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProductsPageFiltersByCategory(t *testing.T) {
	app, _, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/products?category=khamiis&lang=en", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Premium Khamiis") {
		t.Fatal("khamiis product missing from filtered page")
	}
	if strings.Contains(page, "/product/p-suit-classic") {
		t.Fatal("product from another category leaked into the filtered page")
	}
}

func TestProductsPageEmptyState(t *testing.T) {
	app, _, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/products?q=zzzzzz&lang=en", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "No products found.") {
		t.Fatal("empty result must render the no-products state, not a bare grid")
	}
}

func TestProductDetailUnknownIDIsNotFoundState(t *testing.T) {
	app, _, _, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/nope?lang=en", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "This item is no longer available") {
		t.Fatal("unknown product must render the not-found state")
	}
}

func TestProductsPageLanguageToggle(t *testing.T) {
	app, _, _, _ := testApp(t)

	respEN, err := app.Test(httptest.NewRequest("GET", "/products?lang=en", nil))
	if err != nil {
		t.Fatal(err)
	}
	bodyEN, _ := io.ReadAll(respEN.Body)
	if !strings.Contains(string(bodyEN), "Our Products") {
		t.Fatal("English heading missing with lang=en")
	}

	respSO, err := app.Test(httptest.NewRequest("GET", "/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	bodySO, _ := io.ReadAll(respSO.Body)
	if !strings.Contains(string(bodySO), "Alaabteena") {
		t.Fatal("Somali is the default language")
	}
}
