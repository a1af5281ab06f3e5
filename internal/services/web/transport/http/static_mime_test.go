package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithStaticMimeSetsContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/site.css", want: "text/css; charset=utf-8"},
		{path: "/SITE.JS", want: "text/javascript; charset=utf-8"},
		{path: "/logo.svg", want: "image/svg+xml"},
		{path: "/robots", want: ""},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		WithStaticMime(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if got := rec.Header().Get("Content-Type"); got != tc.want {
			t.Fatalf("%s content type = %q, want %q", tc.path, got, tc.want)
		}
		if got := rec.Header().Get("Cache-Control"); got != staticCacheControl {
			t.Fatalf("%s cache control = %q, want %q", tc.path, got, staticCacheControl)
		}
	}
}
