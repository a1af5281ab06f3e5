package seo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/sitemap"
)

func serve(t *testing.T, cfg Config, path string) *httptest.ResponseRecorder {
	t.Helper()

	mount, err := New(cfg).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestSitemapListsEveryLocalizedURL(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 5, 8, 0, 0, 0, time.UTC)
	rr := serve(t, Config{BaseURL: "https://thegreatbeans.com", Now: func() time.Time { return now }}, "/sitemap.xml")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/xml; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse xml: %v", err)
	}
	urls := doc.Find("url")
	want := 2 * (len(sitemap.StaticPages) + len(content.ProductSlugs()) + len(content.PostSlugs()))
	if urls.Length() != want {
		t.Fatalf("url count = %d, want %d", urls.Length(), want)
	}
	if first := urls.First().Find("loc").Text(); first != "https://thegreatbeans.com/en" {
		t.Fatalf("first loc = %q", first)
	}
	if lastmod := urls.First().Find("lastmod").Text(); lastmod != "2024-05-05T08:00:00Z" {
		t.Fatalf("lastmod = %q", lastmod)
	}
	if !strings.Contains(rr.Body.String(), "https://thegreatbeans.com/vi/products/"+content.ProductSlugs()[0]) {
		t.Fatalf("sitemap missing vi product URL")
	}
}

func TestSitemapDerivesOriginFromRequest(t *testing.T) {
	t.Parallel()

	rr := serve(t, Config{}, "/sitemap.xml")
	if !strings.Contains(rr.Body.String(), "<loc>http://example.com/en</loc>") {
		t.Fatalf("sitemap not rooted at request host: %s", rr.Body.String())
	}
}

func TestRobotsPointsAtSitemap(t *testing.T) {
	t.Parallel()

	rr := serve(t, Config{BaseURL: "https://thegreatbeans.com/"}, "/robots.txt")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, line := range []string{"User-agent: *", "Disallow: /api/", "Sitemap: https://thegreatbeans.com/sitemap.xml"} {
		if !strings.Contains(body, line) {
			t.Fatalf("robots missing %q: %q", line, body)
		}
	}
}

func TestModuleID(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "seo" {
		t.Fatalf("ID() = %q, want %q", got, "seo")
	}
}
