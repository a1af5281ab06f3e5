package quote

import (
	"errors"
	"io"
	"net/http"

	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	"github.com/thegreatbeans/web/internal/platform/requestctx"
	quotesvc "github.com/thegreatbeans/web/internal/services/quote"
	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the accepted request body.
const maxBodyBytes = 64 << 10

const (
	messageSubmitted        = "Quote request submitted successfully"
	messageInvalidData      = "Invalid request data"
	messageInvalidJSON      = "Invalid JSON format"
	messageTooLarge         = "Request body too large"
	messageInternal         = "Internal server error"
	messageInternalDetail   = "An unexpected error occurred while processing your request. Please try again later."
	messageMethodNotAllowed = "Method not allowed. Use POST to submit quote requests."
)

type successResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	QuoteID string           `json:"quoteId"`
	Data    quotesvc.Receipt `json:"data"`
}

type validationResponse struct {
	Error   string                `json:"error"`
	Details []quotesvc.FieldError `json:"details"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type handlers struct {
	service   Submitter
	validator *quotesvc.Validator
	logger    *zap.Logger
}

func newHandlers(service Submitter, messages *catalog.Bundle, logger *zap.Logger) handlers {
	return handlers{service: service, validator: quotesvc.NewValidator(messages), logger: logger}
}

func (h handlers) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: messageMethodNotAllowed})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: messageTooLarge})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: messageInvalidJSON})
		return
	}

	req, err := h.validator.Decode(body)
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}
	if h.service == nil {
		h.writeSubmitError(w, r, errors.New("quote service is not configured"))
		return
	}
	receipt, err := h.service.Submit(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: messageSubmitted,
		QuoteID: receipt.QuoteID,
		Data:    receipt,
	})
}

func (h handlers) writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *quotesvc.ValidationError
	switch {
	case errors.As(err, &validation):
		details := validation.Fields
		if details == nil {
			details = []quotesvc.FieldError{}
		}
		h.writeJSON(w, http.StatusBadRequest, validationResponse{Error: messageInvalidData, Details: details})
	case errors.Is(err, quotesvc.ErrInvalidJSON):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: messageInvalidJSON})
	default:
		h.logger.Error("quote submission failed",
			zap.String("request_id", requestctx.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: messageInternal, Message: messageInternalDetail})
	}
}

func (h handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	if err := httpx.WriteJSON(w, status, payload); err != nil {
		h.logger.Warn("write quote response", zap.Error(err))
	}
}
