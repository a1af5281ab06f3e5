package catalog

import (
	"fmt"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"
)

// Localizer binds a bundle to one locale for template rendering.
type Localizer struct {
	bundle  *Bundle
	locale  i18n.Locale
	printer *message.Printer
}

// Localizer returns a localizer for locale. Unsupported locales use the base
// locale.
func (b *Bundle) Localizer(locale i18n.Locale) *Localizer {
	locale = i18n.OrDefault(locale)
	if b != nil {
		locale = b.resolve(locale)
	}
	opts := []message.Option{}
	if b != nil && b.messages != nil {
		opts = append(opts, message.Catalog(b.messages))
	}
	return &Localizer{
		bundle:  b,
		locale:  locale,
		printer: message.NewPrinter(i18n.Tag(locale), opts...),
	}
}

// buildMessageCatalog registers every flattened string with an x/text
// catalog so Sprintf can apply locale-aware number formatting.
func buildMessageCatalog(flat map[i18n.Locale]map[string]string) (*textcatalog.Builder, error) {
	builder := textcatalog.NewBuilder(textcatalog.Fallback(i18n.Tag(BaseLocale)))
	for locale, messages := range flat {
		tag := i18n.Tag(locale)
		for key, value := range messages {
			if err := builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return builder, nil
}

// Locale returns the bound locale.
func (l *Localizer) Locale() i18n.Locale {
	if l == nil {
		return i18n.Default
	}
	return l.locale
}

// Tag returns the language tag of the bound locale.
func (l *Localizer) Tag() language.Tag {
	return i18n.Tag(l.Locale())
}

// T returns the translation for key, or key when it is missing.
func (l *Localizer) T(key string) string {
	if l == nil {
		return key
	}
	return l.bundle.T(l.locale, key)
}

// Has reports whether key resolves to a string.
func (l *Localizer) Has(key string) bool {
	if l == nil {
		return false
	}
	_, ok := l.bundle.Lookup(l.locale, key)
	return ok
}

// Sprintf formats the message stored under key with args using the
// locale's number conventions.
func (l *Localizer) Sprintf(key string, args ...any) string {
	if l == nil {
		return fmt.Sprintf(key, args...)
	}
	if !l.Has(key) {
		return l.T(key)
	}
	return l.printer.Sprintf(key, args...)
}

// Printer exposes the x/text printer for ad-hoc formatting.
func (l *Localizer) Printer() *message.Printer {
	if l == nil {
		return i18n.Printer(i18n.Default)
	}
	return l.printer
}
