package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

const (
	errorNotFoundTitleKey       = "site.errors.not_found.title"
	errorNotFoundDescriptionKey = "site.errors.not_found.description"
	errorServerTitleKey         = "site.errors.server.title"
	errorServerDescriptionKey   = "site.errors.server.description"
	errorBackHomeKey            = "site.errors.not_found.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(loc Localizer, statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorNotFoundTitleKey) + " | " + T(loc, "site.name")
	}
	return T(loc, errorServerTitleKey) + " | " + T(loc, "site.name")
}

// ErrorState renders the error page body. titleKey and descriptionKey
// override the generic copy when set.
func ErrorState(loc Localizer, statusCode int, titleKey string, descriptionKey string) templ.Component {
	return component(func(h *htmlWriter) {
		status := normalizeErrorStatus(statusCode)
		if titleKey == "" {
			titleKey = errorServerTitleKey
			if status == http.StatusNotFound {
				titleKey = errorNotFoundTitleKey
			}
		}
		if descriptionKey == "" {
			descriptionKey = errorServerDescriptionKey
			if status == http.StatusNotFound {
				descriptionKey = errorNotFoundDescriptionKey
			}
		}
		h.open("section", "class", "error-state container", "data-status", itoa(status))
		h.element("p", itoa(status), "class", "error-code")
		h.element("h1", T(loc, titleKey))
		h.element("p", T(loc, descriptionKey), "class", "lead")
		h.link(routepath.Localized(localeOf(loc), routepath.Home), T(loc, errorBackHomeKey), "class", "btn btn-primary")
		h.close("section")
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
