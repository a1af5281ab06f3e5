package publichandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/shared/i18nhttp"
	"github.com/thegreatbeans/web/internal/services/web/platform/pagerender"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestLocalePrefersPathOverContext(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/vi/products", nil)
	req = req.WithContext(i18nhttp.WithLocale(req.Context(), platformi18n.English))
	if got := base.Locale(req); got != platformi18n.Vietnamese {
		t.Fatalf("Locale() = %q, want vi", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	req = req.WithContext(i18nhttp.WithLocale(req.Context(), platformi18n.Vietnamese))
	if got := base.Locale(req); got != platformi18n.Vietnamese {
		t.Fatalf("Locale() = %q, want context locale vi", got)
	}
	if got := base.Locale(nil); got != platformi18n.Default {
		t.Fatalf("Locale(nil) = %q, want default", got)
	}
}

func TestMetaUsesTranslationsAndConfiguredOrigin(t *testing.T) {
	t.Parallel()

	base := NewBase(WithBaseURL("https://thegreatbeans.com/"), WithClock(fixedClock))
	req := httptest.NewRequest(http.MethodGet, "/en/about-us", nil)
	meta := base.Meta(req, "/about-us", "pages.about-us.title", "pages.about-us.description")
	if meta.Title != "About Us - The Great Beans" {
		t.Fatalf("Title = %q", meta.Title)
	}
	if meta.BaseURL != "https://thegreatbeans.com" {
		t.Fatalf("BaseURL = %q", meta.BaseURL)
	}
	if meta.Year != 2024 || meta.Path != "/about-us" {
		t.Fatalf("meta = %+v", meta)
	}
}

func TestBaseURLDerivedFromRequest(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/en", nil)
	req.Host = "localhost:8080"
	if got := base.BaseURL(req); got != "http://localhost:8080" {
		t.Fatalf("BaseURL() = %q", got)
	}
}

func TestBreadcrumbsStartAtLocalizedHome(t *testing.T) {
	t.Parallel()

	base := NewBase()
	req := httptest.NewRequest(http.MethodGet, "/vi/faq", nil)
	crumbs := base.Breadcrumbs(req)
	if len(crumbs) != 1 || crumbs[0].URL != "/vi" || crumbs[0].Name == "" {
		t.Fatalf("crumbs = %+v", crumbs)
	}
	docs := base.BreadcrumbSchema(req, crumbs)
	if len(docs) != 1 || docs[0]["@type"] != "BreadcrumbList" {
		t.Fatalf("schema = %+v", docs)
	}
}

func TestWriteNotFoundRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	base := NewBase(WithClock(fixedClock))
	req := httptest.NewRequest(http.MethodGet, "/vi/khong-ton-tai", nil)
	rr := httptest.NewRecorder()
	base.WriteNotFound(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="vi"`) {
		t.Fatalf("body not rendered in vi: %q", body)
	}
	if !strings.Contains(body, `href="/en/khong-ton-tai"`) {
		t.Fatalf("language switcher should keep the missing path: %q", body)
	}
}

func TestWriteErrorLogsAndHidesDetails(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	base := NewBase(WithLogger(zap.New(core)))
	req := httptest.NewRequest(http.MethodGet, "/en/contact", nil)
	rr := httptest.NewRecorder()
	base.WriteError(rr, req, errors.New("ledger offline"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "ledger offline") {
		t.Fatalf("body leaked internal error")
	}
	if logs.FilterMessage("page error").Len() != 1 {
		t.Fatalf("expected one page error log, got %d", logs.Len())
	}
}

func TestWriteErrorLogsTraceID(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	if err != nil {
		t.Fatalf("TraceIDFromHex() error = %v", err)
	}
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	if err != nil {
		t.Fatalf("SpanIDFromHex() error = %v", err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, Remote: true})

	core, logs := observer.New(zap.DebugLevel)
	base := NewBase(WithLogger(zap.New(core)))
	req := httptest.NewRequest(http.MethodGet, "/vi/contact", nil)
	req = req.WithContext(trace.ContextWithRemoteSpanContext(req.Context(), sc))
	base.WriteError(httptest.NewRecorder(), req, errors.New("boom"))

	entries := logs.FilterMessage("page error").All()
	if len(entries) != 1 {
		t.Fatalf("page error logs = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["trace_id"]; got != traceID.String() {
		t.Fatalf("trace_id = %v, want %s", got, traceID)
	}
}

func TestWritePageRendersThroughLayout(t *testing.T) {
	t.Parallel()

	base := NewBase(WithClock(fixedClock))
	req := httptest.NewRequest(http.MethodGet, "/en/faq", nil)
	rr := httptest.NewRecorder()
	base.WritePage(rr, req, pagerender.Page{Meta: base.Meta(req, "/faq", "pages.faq.title", "pages.faq.description")})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<title>FAQ - The Great Beans</title>") {
		t.Fatalf("body missing title: %q", rr.Body.String())
	}
}
