package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	"github.com/thegreatbeans/web/internal/platform/logging"
	"github.com/thegreatbeans/web/internal/platform/timeouts"
	"github.com/thegreatbeans/web/internal/services/shared/i18nhttp"
	webapp "github.com/thegreatbeans/web/internal/services/web/app"
	"github.com/thegreatbeans/web/internal/services/web/modules"
	"github.com/thegreatbeans/web/internal/services/web/modules/quote"
	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
	"github.com/thegreatbeans/web/internal/services/web/platform/observability"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/platform/requestmeta"
	webstatic "github.com/thegreatbeans/web/internal/services/web/static"
	transporthttp "github.com/thegreatbeans/web/internal/services/web/transport/http"
	"github.com/thegreatbeans/web/internal/services/web/transport/httpmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// traceOperation names the server span wrapping every request.
const traceOperation = "web"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// BaseURL is the public origin used for canonical links, the sitemap
	// and robots.txt. When empty it is derived from each request.
	BaseURL             string
	TrustForwardedProto bool
	Quote               quote.Submitter
	Messages            *catalog.Bundle
	Logger              *zap.Logger
	Now                 func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrNop(cfg.Logger)
	messages := cfg.Messages
	if messages == nil {
		messages = catalog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	base := publichandler.NewBase(
		publichandler.WithBundle(messages),
		publichandler.WithLogger(logger),
		publichandler.WithBaseURL(cfg.BaseURL),
		publichandler.WithSchemePolicy(policy),
		publichandler.WithClock(now),
	)
	rootMux, err := webapp.Compose(modules.DefaultModules(modules.Dependencies{
		Base:         base,
		Quote:        cfg.Quote,
		Messages:     messages,
		Logger:       logger,
		BaseURL:      cfg.BaseURL,
		SchemePolicy: policy,
		Now:          now,
	}))
	if err != nil {
		return nil, err
	}
	httpmux.MountStatic(rootMux, webstatic.FS, transporthttp.WithStaticMime)
	httpmux.MountHealth(rootMux)
	httpmux.MountFallback(rootMux, http.HandlerFunc(base.WriteNotFound))

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.SecurityHeaders(),
		observability.RequestLogger(logger),
		withTracing(),
		i18nhttp.Middleware,
	), nil
}

func withTracing() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, traceOperation,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("web server listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		s.logger.Info("web server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
