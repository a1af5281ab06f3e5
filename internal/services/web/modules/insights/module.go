// Package insights serves the article index and article pages.
package insights

import (
	"net/http"

	module "github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

const relatedLimit = 3

// Module provides the insights routes.
type Module struct {
	base publichandler.Base
}

// New returns the insights module rendering through base.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "insights"
}

// Mount wires article routes under every localized insights prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefixes: module.LocalePrefixes(routepath.Insights), Handler: mux}, nil
}
