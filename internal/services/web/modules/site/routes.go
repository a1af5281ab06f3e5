package site

import (
	"net/http"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	for _, locale := range i18n.Supported() {
		root := routepath.LocalePrefix(locale)
		mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, routepath.Home), h.handleHome)
		mux.HandleFunc(http.MethodGet+" "+root+"/{$}", h.handleHome)
		for _, slug := range routepath.StaticPages {
			mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, "/"+slug), h.handlePage(slug))
		}
		mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, routepath.LegacyCoffee+routepath.SlugPattern), h.handleLegacyProduct)
		mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, routepath.LegacyBlog+routepath.SlugPattern), h.handleLegacyPost)
		mux.HandleFunc(root+"/", h.handleNotFound)
	}
}
