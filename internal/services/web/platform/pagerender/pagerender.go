// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
	"github.com/thegreatbeans/web/internal/services/web/templates"
)

// Page describes one full-document page response.
type Page struct {
	Meta       templates.PageMeta
	StatusCode int
	Body       templ.Component
}

// Chrome is the request-scoped state the site layout needs around a page body.
type Chrome struct {
	Localizer templates.Localizer
	Company   content.CompanyInfo
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the site layout. Nothing is written when
// rendering fails so the caller can still choose an error response.
func WritePage(w http.ResponseWriter, r *http.Request, chrome Chrome, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	var buf bytes.Buffer
	layout := templates.Layout(page.Meta, chrome.Localizer, chrome.Company)
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
