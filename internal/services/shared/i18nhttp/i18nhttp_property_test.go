package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
)

func genPathSegments() gopter.Gen {
	return gen.SliceOfN(3, gen.RegexMatch(`[a-z0-9-]{0,8}`))
}

func genAcceptLanguage() gopter.Gen {
	return gen.OneConstOf("", "vi", "en-US", "vi-VN,en;q=0.8", "fr;q=0.9,vi;q=0.2", "*", "de", ";q=oops", "en;q=0.1,vi;q=0.9")
}

func TestLocaleResolutionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("prefixed paths keep their locale and never redirect", prop.ForAll(
		func(segments []string, header string, useVietnamese bool) bool {
			locale := platformi18n.English
			if useVietnamese {
				locale = platformi18n.Vietnamese
			}
			path := "/" + string(locale)
			if rest := strings.Join(segments, "/"); strings.Trim(rest, "/") != "" {
				path += "/" + rest
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Accept-Language", header)
			res := Resolve(req)
			return !res.Redirect && res.Locale == locale && ResolveLocale(path, header) == locale
		},
		genPathSegments(),
		genAcceptLanguage(),
		gen.Bool(),
	))

	properties.Property("unprefixed paths redirect once to a stable target", prop.ForAll(
		func(segments []string, header string) bool {
			path := "/" + strings.Join(segments, "/")
			if HasLocalePrefix(path) {
				return true
			}
			req := httptest.NewRequest(http.MethodGet, path+"?q=1", nil)
			req.Header.Set("Accept-Language", header)
			first := Resolve(req)
			if !first.Redirect || !strings.HasSuffix(first.Target, "?q=1") {
				return false
			}

			follow := httptest.NewRequest(http.MethodGet, first.Target, nil)
			follow.Header.Set("Accept-Language", header)
			second := Resolve(follow)
			return !second.Redirect && second.Locale == first.Locale
		},
		genPathSegments(),
		genAcceptLanguage(),
	))

	properties.Property("resolution is total over arbitrary headers", prop.ForAll(
		func(header string) bool {
			return platformi18n.IsSupported(string(ResolveLocale("/", header)))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
