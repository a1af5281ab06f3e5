package templates

import (
	"fmt"

	"github.com/thegreatbeans/web/internal/platform/i18n"
)

// Localizer provides translated strings for web components.
type Localizer interface {
	Locale() i18n.Locale
	T(key string) string
	Sprintf(key string, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key string, args ...any) string {
	if loc != nil {
		if len(args) == 0 {
			return loc.T(key)
		}
		return loc.Sprintf(key, args...)
	}
	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}
	return key
}

func localeOf(loc Localizer) i18n.Locale {
	if loc == nil {
		return i18n.Default
	}
	return i18n.OrDefault(loc.Locale())
}
