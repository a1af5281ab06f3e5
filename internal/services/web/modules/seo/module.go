// Package seo serves the crawler files: sitemap.xml and robots.txt.
package seo

import (
	"net/http"
	"time"

	"github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/platform/requestmeta"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Config controls how crawler files build absolute URLs.
type Config struct {
	BaseURL      string
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
	Logger       *zap.Logger
}

// Module provides the crawler routes.
type Module struct {
	cfg Config
}

// New returns the seo module.
func New(cfg Config) Module {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return Module{cfg: cfg}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "seo"
}

// Mount wires the sitemap and robots routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{cfg: m.cfg}
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, h.handleSitemap)
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
	return module.Mount{Prefixes: []string{routepath.Sitemap, routepath.Robots}, Handler: mux}, nil
}
