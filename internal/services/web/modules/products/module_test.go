package products

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	base := publichandler.NewBase(
		publichandler.WithBaseURL("https://thegreatbeans.com"),
		publichandler.WithClock(func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }),
	)
	mount, err := New(base).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func get(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return rr, doc
}

func jsonLD(t *testing.T, doc *goquery.Document) map[string]map[string]any {
	t.Helper()

	out := map[string]map[string]any{}
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var payload map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			t.Fatalf("decode json-ld: %v", err)
		}
		kind, _ := payload["@type"].(string)
		out[kind] = payload
	})
	return out
}

func TestMountPrefixes(t *testing.T) {
	t.Parallel()

	mount, err := New(publichandler.NewBase()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if len(mount.Prefixes) != 4 || mount.Prefixes[0] != "/en/products" || mount.Prefixes[1] != "/en/products/" {
		t.Fatalf("prefixes = %v", mount.Prefixes)
	}
}

func TestListShowsEveryAvailableProduct(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	for _, path := range []string{"/en/products", "/en/products/"} {
		rr, doc := get(t, handler, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rr.Code)
		}
		if got, want := doc.Find(".product-card").Length(), len(content.Products()); got != want {
			t.Fatalf("GET %s cards = %d, want %d", path, got, want)
		}
		if _, ok := jsonLD(t, doc)["BreadcrumbList"]; !ok {
			t.Fatalf("GET %s missing breadcrumb json-ld", path)
		}
		if active := doc.Find(".category-tabs a.active").Text(); active != "All Coffees" {
			t.Fatalf("active tab = %q", active)
		}
	}
}

func TestCategoryPagesFilterProducts(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	for _, category := range content.Categories() {
		path := "/vi/products/" + string(category)
		rr, doc := get(t, handler, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rr.Code)
		}
		if got, want := doc.Find(".product-card").Length(), len(content.ProductsByCategory(category)); got != want {
			t.Fatalf("GET %s cards = %d, want %d", path, got, want)
		}
		crumbs := jsonLD(t, doc)["BreadcrumbList"]
		items, _ := crumbs["itemListElement"].([]any)
		if len(items) != 3 {
			t.Fatalf("GET %s breadcrumb items = %d, want 3", path, len(items))
		}
		last, _ := items[2].(map[string]any)
		if last["item"] != "https://thegreatbeans.com"+path {
			t.Fatalf("GET %s last crumb = %v", path, last["item"])
		}
	}
}

func TestDetailRendersProductSchemaAndRelated(t *testing.T) {
	t.Parallel()

	rr, doc := get(t, newTestHandler(t), "/en/products/premium-robusta-grade-1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	product, _ := content.ProductBySlug("premium-robusta-grade-1")
	if got, want := doc.Find("title").Text(), product.Name+" - The Great Beans"; got != want {
		t.Fatalf("title = %q, want %q", got, want)
	}
	if image, _ := doc.Find(`meta[property="og:image"]`).Attr("content"); image != "https://thegreatbeans.com"+product.PrimaryImage() {
		t.Fatalf("og:image = %q", image)
	}
	docs := jsonLD(t, doc)
	productDoc, ok := docs["Product"]
	if !ok {
		t.Fatalf("missing product json-ld")
	}
	if productDoc["name"] != product.Name {
		t.Fatalf("json-ld name = %v", productDoc["name"])
	}
	if _, ok := docs["BreadcrumbList"]; !ok {
		t.Fatalf("missing breadcrumb json-ld")
	}

	related := doc.Find(".related .product-card")
	if related.Length() == 0 || related.Length() > relatedLimit {
		t.Fatalf("related cards = %d, want 1..%d", related.Length(), relatedLimit)
	}
	related.Find("h3 a").Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href == "/en/products/premium-robusta-grade-1" {
			t.Fatalf("related products include the current product")
		}
	})
}

func TestUnknownProductRendersLocalizedNotFound(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	rr, doc := get(t, handler, "/vi/products/khong-ton-tai")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if got := doc.Find("h1").Text(); got != "Không tìm thấy sản phẩm" {
		t.Fatalf("heading = %q", got)
	}

	rr, _ = get(t, handler, "/en/products/premium-robusta-grade-1/extra")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("nested path status = %d, want 404", rr.Code)
	}
}
