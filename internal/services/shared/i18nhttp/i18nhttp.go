// Package i18nhttp resolves the active site locale for HTTP requests.
package i18nhttp

import (
	"context"
	"net/http"
	"slices"
	"strings"

	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
	"golang.org/x/text/language"
)

// HeaderLocale echoes the resolved locale on responses.
const HeaderLocale = "X-Locale"

// Resolution is the outcome of resolving a request's locale.
type Resolution struct {
	Locale platformi18n.Locale
	// Redirect is set when the path carried no locale prefix.
	Redirect bool
	// Target is the locale-prefixed URL to redirect to, query included.
	Target string
}

// LanguageOption represents one entry of the language switcher.
type LanguageOption struct {
	Locale     platformi18n.Locale
	Label      string
	NativeName string
	Flag       string
	URL        string
	Active     bool
}

type localeContextKey struct{}

// WithLocale stores the resolved locale in ctx.
func WithLocale(ctx context.Context, locale platformi18n.Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// FromContext returns the locale stored in ctx, or the default locale.
func FromContext(ctx context.Context) platformi18n.Locale {
	if ctx == nil {
		return platformi18n.Default
	}
	if locale, ok := ctx.Value(localeContextKey{}).(platformi18n.Locale); ok {
		return locale
	}
	return platformi18n.Default
}

// pathLocale reports the locale named by the first path segment, if any.
// Only an exact "/{L}" or "/{L}/..." form counts.
func pathLocale(path string) (platformi18n.Locale, bool) {
	for _, locale := range platformi18n.Supported() {
		prefix := "/" + string(locale)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return locale, true
		}
	}
	return "", false
}

// HasLocalePrefix reports whether path starts with a supported locale segment.
func HasLocalePrefix(path string) bool {
	_, ok := pathLocale(path)
	return ok
}

// LocaleFromPath returns the locale prefix of path, or the default locale.
func LocaleFromPath(path string) platformi18n.Locale {
	if locale, ok := pathLocale(path); ok {
		return locale
	}
	return platformi18n.Default
}

// StripLocale removes a leading locale segment. The result always starts
// with "/".
func StripLocale(path string) string {
	if path == "" {
		return "/"
	}
	locale, ok := pathLocale(path)
	if !ok {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+string(locale))
	if rest == "" {
		return "/"
	}
	return rest
}

// LocalizedPath rewrites path under locale, replacing any existing prefix.
// The root maps to "/{L}".
func LocalizedPath(path string, locale platformi18n.Locale) string {
	locale = platformi18n.OrDefault(locale)
	rest := StripLocale(path)
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	if rest == "/" {
		return "/" + string(locale)
	}
	return "/" + string(locale) + rest
}

type weightedTag struct {
	tag     language.Tag
	quality float32
}

// parseAcceptLanguage parses each comma separated entry on its own so a single
// malformed entry does not discard the rest. Entries are returned sorted by
// descending quality, keeping header order for ties.
func parseAcceptLanguage(header string) []weightedTag {
	var out []weightedTag
	for _, entry := range strings.Split(header, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tags, qualities, err := language.ParseAcceptLanguage(entry)
		if err != nil {
			continue
		}
		for i, tag := range tags {
			// q=0 means "not acceptable".
			if qualities[i] <= 0 {
				continue
			}
			out = append(out, weightedTag{tag: tag, quality: qualities[i]})
		}
	}
	slices.SortStableFunc(out, func(a, b weightedTag) int {
		switch {
		case a.quality > b.quality:
			return -1
		case a.quality < b.quality:
			return 1
		default:
			return 0
		}
	})
	return out
}

// headerLocale picks the first supported exact or base-language match.
func headerLocale(acceptLanguage string) (platformi18n.Locale, bool) {
	for _, candidate := range parseAcceptLanguage(acceptLanguage) {
		if locale, ok := platformi18n.Parse(candidate.tag.String()); ok {
			return locale, true
		}
		base, _ := candidate.tag.Base()
		if locale, ok := platformi18n.Parse(base.String()); ok {
			return locale, true
		}
	}
	return "", false
}

// ResolveLocale determines the locale for a request path and Accept-Language
// header. The path prefix wins, then the header, then the default locale.
func ResolveLocale(path, acceptLanguage string) platformi18n.Locale {
	if locale, ok := pathLocale(path); ok {
		return locale
	}
	if locale, ok := headerLocale(acceptLanguage); ok {
		return locale
	}
	return platformi18n.Default
}

// Resolve computes the locale for r and whether it must be redirected to a
// locale-prefixed URL.
func Resolve(r *http.Request) Resolution {
	if r == nil || r.URL == nil {
		return Resolution{Locale: platformi18n.Default}
	}
	path := r.URL.Path
	if path == "" {
		path = "/"
	}
	locale := ResolveLocale(path, r.Header.Get("Accept-Language"))
	if HasLocalePrefix(path) {
		return Resolution{Locale: locale}
	}
	target := LocalizedPath(path, locale)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return Resolution{Locale: locale, Redirect: true, Target: target}
}

// Skip reports whether path bypasses locale handling: APIs, static assets,
// crawler files, health checks and anything that looks like a file.
func Skip(path string) bool {
	switch path {
	case "/favicon.ico", "/robots.txt", "/sitemap.xml", "/healthz":
		return true
	}
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/static/") {
		return true
	}
	return strings.Contains(path, ".")
}

// Middleware redirects unprefixed page requests to their localized URL and
// attaches the resolved locale to the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Skip(r.URL.Path) {
			locale := ResolveLocale(r.URL.Path, r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
			return
		}
		resolution := Resolve(r)
		if resolution.Redirect {
			http.Redirect(w, r, resolution.Target, http.StatusTemporaryRedirect)
			return
		}
		w.Header().Set("Content-Language", string(resolution.Locale))
		w.Header().Set(HeaderLocale, string(resolution.Locale))
		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), resolution.Locale)))
	})
}

// LanguageOptions returns switcher entries pointing at path in every
// supported locale.
func LanguageOptions(current platformi18n.Locale, path string) []LanguageOption {
	current = platformi18n.OrDefault(current)
	supported := platformi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, locale := range supported {
		info := platformi18n.Info(locale)
		options = append(options, LanguageOption{
			Locale:     locale,
			Label:      info.Name,
			NativeName: info.NativeName,
			Flag:       info.Flag,
			URL:        LocalizedPath(path, locale),
			Active:     locale == current,
		})
	}
	return options
}
