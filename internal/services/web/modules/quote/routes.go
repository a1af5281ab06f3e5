package quote

import (
	"net/http"

	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.APIQuote, h.handleQuote)
}
