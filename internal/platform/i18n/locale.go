// Package i18n defines the closed set of site locales and their formatting
// rules.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is a supported UI language code.
type Locale string

const (
	// English is the default site locale.
	English Locale = "en"
	// Vietnamese is the secondary site locale.
	Vietnamese Locale = "vi"
)

// Default is used whenever no locale can be resolved.
const Default = English

var supported = []Locale{English, Vietnamese}

// LocaleInfo describes a locale for language switchers.
type LocaleInfo struct {
	Code       Locale
	Name       string
	NativeName string
	Flag       string
}

var infos = map[Locale]LocaleInfo{
	English:    {Code: English, Name: "English", NativeName: "English", Flag: "🇺🇸"},
	Vietnamese: {Code: Vietnamese, Name: "Vietnamese", NativeName: "Tiếng Việt", Flag: "🇻🇳"},
}

// Supported returns the supported locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse normalizes a raw code and reports whether it is supported.
func Parse(raw string) (Locale, bool) {
	candidate := Locale(strings.ToLower(strings.TrimSpace(raw)))
	for _, locale := range supported {
		if candidate == locale {
			return locale, true
		}
	}
	return "", false
}

// IsSupported reports whether raw names a supported locale.
func IsSupported(raw string) bool {
	_, ok := Parse(raw)
	return ok
}

// OrDefault returns l when supported, otherwise Default.
func OrDefault(l Locale) Locale {
	if parsed, ok := Parse(string(l)); ok {
		return parsed
	}
	return Default
}

func (l Locale) String() string {
	return string(l)
}

// Info returns display metadata for l.
func Info(l Locale) LocaleInfo {
	return infos[OrDefault(l)]
}

// Alternate returns the other locale, used by the language switcher.
func Alternate(l Locale) Locale {
	if OrDefault(l) == English {
		return Vietnamese
	}
	return English
}

// Tag returns the regional language tag for l.
func Tag(l Locale) language.Tag {
	if OrDefault(l) == Vietnamese {
		return language.MustParse("vi-VN")
	}
	return language.AmericanEnglish
}

// OpenGraphLocale returns the og:locale value for l.
func OpenGraphLocale(l Locale) string {
	return strings.ReplaceAll(Tag(l).String(), "-", "_")
}

// Printer returns an x/text printer for l.
func Printer(l Locale) *message.Printer {
	return message.NewPrinter(Tag(l))
}

// FormatNumber formats value with the grouping and decimal separators of l.
func FormatNumber(l Locale, value float64) string {
	return Printer(l).Sprint(number.Decimal(value))
}

var vietnameseMonthNames = [...]string{
	"tháng 1", "tháng 2", "tháng 3", "tháng 4", "tháng 5", "tháng 6",
	"tháng 7", "tháng 8", "tháng 9", "tháng 10", "tháng 11", "tháng 12",
}

// FormatDate renders a long-form calendar date for l.
func FormatDate(l Locale, t time.Time) string {
	if OrDefault(l) == Vietnamese {
		return fmt.Sprintf("%d %s, %d", t.Day(), vietnameseMonthNames[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
