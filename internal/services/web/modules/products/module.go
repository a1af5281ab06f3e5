// Package products serves the coffee catalog pages.
package products

import (
	"net/http"

	module "github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// relatedLimit caps the related products shown on a detail page.
const relatedLimit = 3

// Module provides the product listing, category and detail routes.
type Module struct {
	base publichandler.Base
}

// New returns the products module rendering through base.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "products"
}

// Mount wires catalog routes under every localized products prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefixes: module.LocalePrefixes(routepath.Products), Handler: mux}, nil
}
