package products

import (
	"net/http"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	for _, locale := range i18n.Supported() {
		list := routepath.Localized(locale, routepath.Products)
		mux.HandleFunc(http.MethodGet+" "+list, h.handleList)
		mux.HandleFunc(http.MethodGet+" "+list+"/{$}", h.handleList)
		for _, category := range content.Categories() {
			mux.HandleFunc(http.MethodGet+" "+routepath.ProductCategory(locale, string(category)), h.handleCategory(category))
		}
		mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, routepath.ProductsPrefix+routepath.SlugPattern), h.handleDetail)
		mux.HandleFunc(list+"/", h.handleNotFound)
	}
}
