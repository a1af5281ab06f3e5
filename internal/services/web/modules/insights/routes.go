package insights

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
		list := routepath.Localized(locale, routepath.Insights)
		mux.HandleFunc(http.MethodGet+" "+list, h.handleList)
		mux.HandleFunc(http.MethodGet+" "+list+"/{$}", h.handleList)
		mux.HandleFunc(routepath.Pattern(http.MethodGet, locale, routepath.InsightsPrefix+routepath.SlugPattern), h.handleDetail)
		mux.HandleFunc(list+"/", h.handleNotFound)
	}
}
