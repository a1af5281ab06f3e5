package seo

import (
	"bytes"
	"net/http"

	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/sitemap"
	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
	"github.com/thegreatbeans/web/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

type handlers struct {
	cfg Config
}

func (h handlers) baseURL(r *http.Request) string {
	return requestmeta.BaseURL(r, h.cfg.BaseURL, h.cfg.SchemePolicy)
}

func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	set := sitemap.Build(sitemap.Input{
		BaseURL:      h.baseURL(r),
		Now:          h.cfg.Now(),
		Pages:        sitemap.StaticPages,
		ProductSlugs: content.ProductSlugs(),
		PostSlugs:    content.PostSlugs(),
	})
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, set); err != nil {
		h.cfg.Logger.Error("encode sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) handleRobots(w http.ResponseWriter, r *http.Request) {
	if err := httpx.WriteText(w, http.StatusOK, sitemap.Robots(h.baseURL(r))); err != nil {
		h.cfg.Logger.Warn("write robots", zap.Error(err))
	}
}
