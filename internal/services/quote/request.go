// Package quote validates and records bulk coffee quote requests.
package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
)

// Request is the payload posted by the contact page quote form.
type Request struct {
	CompanyName           string   `json:"companyName" validate:"min=2"`
	ContactPerson         string   `json:"contactPerson" validate:"min=2"`
	Email                 string   `json:"email" validate:"email"`
	Phone                 string   `json:"phone,omitempty"`
	Country               string   `json:"country" validate:"min=2"`
	InterestedProducts    []string `json:"interestedProducts" validate:"min=1"`
	QuantityInTons        *float64 `json:"quantityInTons" validate:"required,min=1,max=10000"`
	PackagingRequirements string   `json:"packagingRequirements,omitempty"`
	DeliveryTimeline      string   `json:"deliveryTimeline,omitempty"`
	Message               string   `json:"message,omitempty"`
	Locale                string   `json:"locale,omitempty"`
	SubmittedAt           string   `json:"submittedAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ErrInvalidJSON reports a body that is not a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON format")

// FieldError describes one rejected request field.
type FieldError struct {
	Path    []string `json:"path"`
	Field   string   `json:"field"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid request data"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.Field+": "+field.Message)
	}
	return "invalid request data: " + strings.Join(parts, "; ")
}

// Validator checks requests against their struct tags and localizes failures.
type Validator struct {
	validate *validator.Validate
	messages *catalog.Bundle
}

// NewValidator builds a Validator that reports fields by their JSON names.
func NewValidator(messages *catalog.Bundle) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, messages: messages}
}

// Validate returns nil when the request is acceptable, otherwise a
// *ValidationError listing each failing field in declaration order.
func (v *Validator) Validate(req Request) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate quote request: %w", err)
	}
	locale := requestLocale(req.Locale)
	out := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Path:    []string{fe.Field()},
			Field:   fe.Field(),
			Code:    issueCode(fe.Tag()),
			Message: v.messages.T(locale, messageKey(fe.Field(), fe.Tag())),
		})
	}
	return &ValidationError{Fields: out}
}

type jsonField struct {
	name  string
	index int
}

var requestFields = jsonFields(reflect.TypeOf(Request{}))

func jsonFields(t reflect.Type) []jsonField {
	out := make([]jsonField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		out = append(out, jsonField{name: name, index: i})
	}
	return out
}

// Decode parses a JSON quote request one field at a time. A body that is not
// JSON at all is ErrInvalidJSON. A JSON value that is not an object yields a
// single root error; fields of the wrong type yield a *ValidationError that
// also lists every other field the validator rejects, in declaration order.
func (v *Validator) Decode(body []byte) (Request, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Request{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		raw = nil
	}
	if raw == nil {
		return Request{}, &ValidationError{Fields: []FieldError{v.typeError(i18n.Default, "")}}
	}

	var req Request
	if value, ok := raw["locale"]; ok {
		_ = json.Unmarshal(value, &req.Locale)
	}
	locale := requestLocale(req.Locale)

	target := reflect.ValueOf(&req).Elem()
	typeErrs := make(map[string]FieldError)
	for _, field := range requestFields {
		value, ok := raw[field.name]
		if !ok {
			continue
		}
		dst := target.Field(field.index)
		if err := json.Unmarshal(value, dst.Addr().Interface()); err != nil {
			dst.Set(reflect.Zero(dst.Type()))
			typeErrs[field.name] = v.typeError(locale, field.name)
		}
	}
	if len(typeErrs) == 0 {
		return req, nil
	}

	byField := make(map[string][]FieldError)
	if err := v.Validate(req); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return Request{}, err
		}
		for _, fe := range verr.Fields {
			byField[fe.Field] = append(byField[fe.Field], fe)
		}
	}
	out := make([]FieldError, 0, len(typeErrs)+len(byField))
	for _, field := range requestFields {
		if fe, ok := typeErrs[field.name]; ok {
			out = append(out, fe)
			continue
		}
		out = append(out, byField[field.name]...)
	}
	return req, &ValidationError{Fields: out}
}

// typeError reports a value of the wrong JSON type. An empty field names the
// request body itself.
func (v *Validator) typeError(locale i18n.Locale, field string) FieldError {
	if field == "" {
		return FieldError{
			Path:    []string{},
			Code:    "invalid_type",
			Message: v.messages.T(locale, "quote.validation.invalid_type"),
		}
	}
	return FieldError{
		Path:    []string{field},
		Field:   field,
		Code:    "invalid_type",
		Message: v.messages.T(locale, messageKey(field, "type")),
	}
}

func requestLocale(raw string) i18n.Locale {
	locale, _ := i18n.Parse(raw)
	return i18n.OrDefault(locale)
}

func issueCode(tag string) string {
	switch tag {
	case "min":
		return "too_small"
	case "max":
		return "too_big"
	case "email", "datetime":
		return "invalid_string"
	default:
		return "invalid_type"
	}
}

func messageKey(field, tag string) string {
	const prefix = "quote.validation."
	switch field {
	case "companyName":
		return prefix + "company_name_min"
	case "contactPerson":
		return prefix + "contact_person_min"
	case "email":
		return prefix + "email_invalid"
	case "country":
		return prefix + "country_required"
	case "interestedProducts":
		return prefix + "products_min"
	case "quantityInTons":
		switch tag {
		case "min":
			return prefix + "quantity_min"
		case "max":
			return prefix + "quantity_max"
		default:
			return prefix + "quantity_invalid"
		}
	case "submittedAt":
		return prefix + "submitted_at_invalid"
	default:
		return prefix + "invalid_type"
	}
}
