// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"

	"github.com/thegreatbeans/web/internal/platform/i18n"
)

const (
	Root         = "/"
	Health       = "/healthz"
	Sitemap      = "/sitemap.xml"
	Robots       = "/robots.txt"
	Favicon      = "/favicon.ico"
	StaticPrefix = "/static/"
	APIQuote     = "/api/quote"

	// Locale-less page paths. Prefix with LocalePrefix or use Localized.
	Home           = "/"
	AboutUs        = "/about-us"
	OurProcess     = "/our-process"
	Sustainability = "/sustainability"
	Contact        = "/contact"
	FAQ            = "/faq"
	TradeTerms     = "/trade-terms"
	Shipping       = "/shipping"
	Returns        = "/returns"
	PrivacyPolicy  = "/privacy-policy"
	TermsOfService = "/terms-of-service"
	CookiePolicy   = "/cookie-policy"
	Careers        = "/careers"
	Products       = "/products"
	ProductsPrefix = "/products/"
	Insights       = "/insights"
	InsightsPrefix = "/insights/"
	LegacyCoffee   = "/coffee/"
	LegacyBlog     = "/blog/"
	SlugPattern    = "{slug}"
)

// StaticPages lists the translation-driven page slugs in navigation order.
var StaticPages = []string{
	"about-us",
	"our-process",
	"sustainability",
	"contact",
	"faq",
	"trade-terms",
	"shipping",
	"returns",
	"privacy-policy",
	"terms-of-service",
	"cookie-policy",
	"careers",
}

// LocalePrefix returns "/{locale}".
func LocalePrefix(locale i18n.Locale) string {
	return "/" + string(i18n.OrDefault(locale))
}

// Localized prefixes a locale-less path with locale. The home path maps to
// the bare locale root.
func Localized(locale i18n.Locale, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == Root {
		return LocalePrefix(locale)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return LocalePrefix(locale) + path
}

// Page returns the localized static page route for slug.
func Page(locale i18n.Locale, slug string) string {
	return Localized(locale, "/"+escapeSegment(slug))
}

// Product returns the localized product detail route.
func Product(locale i18n.Locale, slug string) string {
	return Localized(locale, ProductsPrefix+escapeSegment(slug))
}

// ProductCategory returns the localized category listing route. Category
// names share the product path segment and win over product slugs.
func ProductCategory(locale i18n.Locale, category string) string {
	return Localized(locale, ProductsPrefix+escapeSegment(category))
}

// Insight returns the localized post detail route.
func Insight(locale i18n.Locale, slug string) string {
	return Localized(locale, InsightsPrefix+escapeSegment(slug))
}

// Pattern builds a ServeMux pattern for method and a localized path. The home
// path yields the exact "/{locale}" pattern.
func Pattern(method string, locale i18n.Locale, path string) string {
	target := Localized(locale, path)
	method = strings.TrimSpace(method)
	if method == "" {
		return target
	}
	return method + " " + target
}

// Absolute joins baseURL and a site-relative path.
func Absolute(baseURL string, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
