// Package web parses configuration for and runs the website service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	platformcmd "github.com/thegreatbeans/web/internal/platform/cmd"
	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	"github.com/thegreatbeans/web/internal/platform/logging"
	"github.com/thegreatbeans/web/internal/platform/otel"
	"github.com/thegreatbeans/web/internal/services/quote"
	quotesqlite "github.com/thegreatbeans/web/internal/services/quote/storage/sqlite"
	"github.com/thegreatbeans/web/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BaseURL             string `env:"BASE_URL" envDefault:"https://thegreatbeans.com"`
	TrustForwardedProto bool   `env:"WEB_TRUST_FORWARDED_PROTO"`
	Logging             logging.Config
	Telemetry           otel.Config
	Quote               quote.Config
}

// ParseConfig loads GREATBEANS_* environment defaults, then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Public site origin used for canonical links and the sitemap")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto from a fronting proxy")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format (json, console)")
	fs.DurationVar(&cfg.Quote.Delay, "quote-delay", cfg.Quote.Delay, "Simulated quote processing delay; 0 or negative disables it")
	fs.StringVar(&cfg.Quote.LedgerPath, "quote-ledger", cfg.Quote.LedgerPath, "SQLite file recording accepted quotes; empty disables it")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the website and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, cfg.Telemetry, logger, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	messages := catalog.Default().WithLogger(logger)

	var ledger quote.Ledger
	if path := strings.TrimSpace(cfg.Quote.LedgerPath); path != "" {
		store, err := quotesqlite.Open(ctx, path)
		if err != nil {
			return fmt.Errorf("open quote ledger: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("close quote ledger", zap.Error(err))
			}
		}()
		ledger = store
		logger.Info("quote ledger enabled", zap.String("path", path))
	}

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		BaseURL:             cfg.BaseURL,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Messages:            messages,
		Logger:              logger,
		Quote: quote.NewService(quote.Options{
			Delay:    quoteDelay(cfg.Quote.Delay),
			Ledger:   ledger,
			Logger:   logger,
			Messages: messages,
		}),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// quoteDelay maps the configured delay onto quote.Options, where zero means
// the default. An explicit zero here turns the delay off.
func quoteDelay(configured time.Duration) time.Duration {
	if configured <= 0 {
		return -1
	}
	return configured
}
