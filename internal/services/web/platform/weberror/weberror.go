// Package weberror renders shared localized error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/thegreatbeans/web/internal/services/web/platform/errors"
	"github.com/thegreatbeans/web/internal/services/web/platform/pagerender"
	"github.com/thegreatbeans/web/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.T(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Page builds the error page for statusCode. titleKey and descriptionKey
// select resource-specific copy and may be empty. The page is never indexed.
func Page(loc templates.Localizer, statusCode int, titleKey string, descriptionKey string, meta templates.PageMeta) pagerender.Page {
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	meta.Title = templates.ErrorPageTitle(loc, statusCode)
	if titleKey != "" {
		meta.Title = templates.T(loc, titleKey) + " | " + templates.T(loc, "site.name")
	}
	meta.Description = templates.T(loc, "site.description")
	if descriptionKey != "" {
		meta.Description = templates.T(loc, descriptionKey)
	}
	meta.Type = ""
	meta.Image = ""
	meta.Schemas = nil
	meta.NoIndex = true
	return pagerender.Page{
		Meta:       meta,
		StatusCode: statusCode,
		Body:       templates.ErrorState(loc, statusCode, titleKey, descriptionKey),
	}
}

// WriteAppError writes a localized full-page error response.
func WriteAppError(w http.ResponseWriter, r *http.Request, chrome pagerender.Chrome, meta templates.PageMeta, statusCode int) {
	WriteResourceError(w, r, chrome, meta, statusCode, "", "")
}

// WriteResourceError writes a localized full-page error response using the
// copy of a specific missing resource.
func WriteResourceError(w http.ResponseWriter, r *http.Request, chrome pagerender.Chrome, meta templates.PageMeta, statusCode int, titleKey string, descriptionKey string) {
	if w == nil {
		return
	}
	page := Page(chrome.Localizer, statusCode, titleKey, descriptionKey, meta)
	if err := pagerender.WritePage(w, r, chrome, page); err != nil {
		http.Error(w, http.StatusText(page.StatusCode), page.StatusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Error
// pages use the copy keys carried by err when present.
func WriteModuleError(w http.ResponseWriter, r *http.Request, chrome pagerender.Chrome, meta templates.PageMeta, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		titleKey, descriptionKey := apperrors.PageCopyKeys(err)
		WriteResourceError(w, r, chrome, meta, statusCode, titleKey, descriptionKey)
		return
	}
	http.Error(w, PublicMessage(chrome.Localizer, err), statusCode)
}
