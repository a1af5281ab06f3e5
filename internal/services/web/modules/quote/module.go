// Package quote serves the JSON quote request endpoint.
package quote

import (
	"context"
	"net/http"

	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	quotesvc "github.com/thegreatbeans/web/internal/services/quote"
	module "github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Submitter accepts validated quote requests.
type Submitter interface {
	Submit(ctx context.Context, req quotesvc.Request) (quotesvc.Receipt, error)
}

// Module provides the quote API route.
type Module struct {
	service  Submitter
	messages *catalog.Bundle
	logger   *zap.Logger
}

// New returns the quote API module.
func New(service Submitter, messages *catalog.Bundle, logger *zap.Logger) Module {
	if messages == nil {
		messages = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Module{service: service, messages: messages, logger: logger}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "quote"
}

// Mount wires the quote endpoint.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.service, m.messages, m.logger))
	return module.Mount{Prefixes: []string{routepath.APIQuote}, Handler: mux}, nil
}
