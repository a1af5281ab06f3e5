// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed web application failure.
type Error struct {
	Kind Kind
	// Key localizes the error. On error pages it is the title key.
	Key            string
	DescriptionKey string
	Message        string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// NotFound builds a not-found error carrying the localized message key for
// the missing resource.
func NotFound(key string, message string) error {
	return EK(KindNotFound, key, message)
}

// MissingResource builds a not-found error whose error page shows the
// resource-specific title and description copy.
func MissingResource(titleKey string, descriptionKey string, message string) error {
	return Error{
		Kind:           KindNotFound,
		Key:            strings.TrimSpace(titleKey),
		DescriptionKey: strings.TrimSpace(descriptionKey),
		Message:        message,
	}
}

// PageCopyKeys returns the error page title and description keys carried by
// err. Either may be empty.
func PageCopyKeys(err error) (titleKey string, descriptionKey string) {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return "", ""
	}
	return strings.TrimSpace(appErr.Key), strings.TrimSpace(appErr.DescriptionKey)
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
