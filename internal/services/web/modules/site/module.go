// Package site serves the locale home page, the translation-driven company
// pages and the legacy URL redirects.
package site

import (
	"net/http"

	module "github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// Module provides the locale root routes.
type Module struct {
	base publichandler.Base
}

// New returns the site module rendering through base.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "site"
}

// Mount wires the home, static page and redirect routes under every locale root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefixes: module.LocalePrefixes(routepath.Home), Handler: mux}, nil
}
