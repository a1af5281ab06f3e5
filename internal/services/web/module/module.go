// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// Mount describes a module route mount. Every prefix is registered on the
// root mux and routed to Handler with the request path left intact.
type Mount struct {
	Prefixes []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// LocalePrefixes returns the exact and subtree mount prefixes of a
// locale-less path for every supported locale.
func LocalePrefixes(path string) []string {
	locales := i18n.Supported()
	prefixes := make([]string, 0, len(locales)*2)
	for _, locale := range locales {
		exact := routepath.Localized(locale, path)
		prefixes = append(prefixes, exact, strings.TrimSuffix(exact, "/")+"/")
	}
	return prefixes
}
