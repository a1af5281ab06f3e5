// Package publichandler provides a shared base for public web module handlers.
// It centralizes localization, page metadata, error handling and page
// rendering that would otherwise be duplicated across modules.
package publichandler

import (
	"net/http"
	"time"

	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	"github.com/thegreatbeans/web/internal/services/shared/i18nhttp"
	apperrors "github.com/thegreatbeans/web/internal/services/web/platform/errors"
	"github.com/thegreatbeans/web/internal/services/web/platform/pagerender"
	"github.com/thegreatbeans/web/internal/services/web/platform/requestmeta"
	"github.com/thegreatbeans/web/internal/services/web/platform/weberror"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
	"github.com/thegreatbeans/web/internal/services/web/templates"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Base provides shared rendering state for public modules. Embed this in
// handler structs to get WritePage, WriteNotFound and WriteError for free.
type Base struct {
	bundle       *catalog.Bundle
	logger       *zap.Logger
	baseURL      string
	schemePolicy requestmeta.SchemePolicy
	now          func() time.Time
	company      content.CompanyInfo
}

// Option configures a Base.
type Option func(*Base)

// WithBundle sets the translation bundle.
func WithBundle(bundle *catalog.Bundle) Option {
	return func(b *Base) {
		if bundle != nil {
			b.bundle = bundle
		}
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithBaseURL sets the public site origin. Empty derives it per request.
func WithBaseURL(baseURL string) Option {
	return func(b *Base) { b.baseURL = baseURL }
}

// WithSchemePolicy controls how derived base URLs pick their scheme.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.schemePolicy = policy }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithCompany overrides the company record shown in the site chrome.
func WithCompany(company content.CompanyInfo) Option {
	return func(b *Base) { b.company = company }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	b := Base{
		bundle:  catalog.Default(),
		logger:  zap.NewNop(),
		now:     time.Now,
		company: content.Company(),
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Locale resolves the rendering locale. The URL prefix wins over the
// middleware-resolved context value.
func (b Base) Locale(r *http.Request) platformi18n.Locale {
	if r == nil {
		return platformi18n.Default
	}
	if r.URL != nil && i18nhttp.HasLocalePrefix(r.URL.Path) {
		return i18nhttp.LocaleFromPath(r.URL.Path)
	}
	return i18nhttp.FromContext(r.Context())
}

// Localizer returns the translator bound to the request locale.
func (b Base) Localizer(r *http.Request) *catalog.Localizer {
	return b.bundleOrDefault().Localizer(b.Locale(r))
}

// BaseURL returns the absolute site origin for r.
func (b Base) BaseURL(r *http.Request) string {
	return requestmeta.BaseURL(r, b.baseURL, b.schemePolicy)
}

// Now returns the current time from the configured clock.
func (b Base) Now() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// Company returns the company record.
func (b Base) Company() content.CompanyInfo {
	return b.company
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// Chrome returns the layout state for r.
func (b Base) Chrome(r *http.Request) pagerender.Chrome {
	return pagerender.Chrome{Localizer: b.Localizer(r), Company: b.company}
}

// Meta builds page metadata for the locale-less path with translated title
// and description. Empty keys leave the field for the caller to fill.
func (b Base) Meta(r *http.Request, path string, titleKey string, descriptionKey string) templates.PageMeta {
	loc := b.Localizer(r)
	meta := templates.PageMeta{
		Path:    path,
		BaseURL: b.BaseURL(r),
		Year:    b.Now().Year(),
	}
	if titleKey != "" {
		meta.Title = loc.T(titleKey)
	}
	if descriptionKey != "" {
		meta.Description = loc.T(descriptionKey)
	}
	return meta
}

// SchemaData returns the structured-data context for r.
func (b Base) SchemaData(r *http.Request) schema.Data {
	company := b.company
	return schema.Data{
		Company: &company,
		Locale:  b.Locale(r),
		BaseURL: b.BaseURL(r),
		Now:     b.Now(),
	}
}

// Breadcrumbs prepends the localized home crumb to trail.
func (b Base) Breadcrumbs(r *http.Request, trail ...schema.Breadcrumb) []schema.Breadcrumb {
	locale := b.Locale(r)
	crumbs := make([]schema.Breadcrumb, 0, len(trail)+1)
	crumbs = append(crumbs, schema.Breadcrumb{
		Name: b.Localizer(r).T("site.nav.home"),
		URL:  routepath.Localized(locale, routepath.Home),
	})
	return append(crumbs, trail...)
}

// BreadcrumbSchema returns the breadcrumb JSON-LD for crumbs.
func (b Base) BreadcrumbSchema(r *http.Request, crumbs []schema.Breadcrumb) []schema.Document {
	data := b.SchemaData(r)
	data.Breadcrumbs = crumbs
	doc, ok := schema.Generate(schema.KindBreadcrumbList, data)
	if !ok {
		return nil
	}
	return []schema.Document{doc}
}

// WritePage renders a full page, falling back to the server error page when
// rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if w == nil {
		return
	}
	if err := pagerender.WritePage(w, r, b.Chrome(r), page); err != nil {
		b.Logger().Error("render page", zap.String("path", requestPath(r)), zap.Error(err))
		weberror.WriteAppError(w, r, b.Chrome(r), b.errorMeta(r), http.StatusInternalServerError)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, b.Chrome(r), b.errorMeta(r), http.StatusNotFound)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		level := zap.DebugLevel
		if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			level = zap.WarnLevel
		}
		if ce := b.Logger().Check(level, "page error"); ce != nil {
			fields := []zap.Field{zap.String("path", requestPath(r)), zap.Error(err)}
			if r != nil {
				if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
					fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
				}
			}
			ce.Write(fields...)
		}
	}
	weberror.WriteModuleError(w, r, b.Chrome(r), b.errorMeta(r), err)
}

func (b Base) errorMeta(r *http.Request) templates.PageMeta {
	return templates.PageMeta{
		Path:    i18nhttp.StripLocale(requestPath(r)),
		BaseURL: b.BaseURL(r),
		Year:    b.Now().Year(),
	}
}

func (b Base) bundleOrDefault() *catalog.Bundle {
	if b.bundle == nil {
		return catalog.Default()
	}
	return b.bundle
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "/"
	}
	return r.URL.Path
}
