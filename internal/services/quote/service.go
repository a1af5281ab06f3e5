package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	"github.com/thegreatbeans/web/internal/platform/id"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "github.com/thegreatbeans/web/internal/services/quote"

// DefaultDelay simulates downstream processing before a receipt is issued.
const DefaultDelay = 500 * time.Millisecond

// submittedAtLayout matches the millisecond UTC timestamps browsers emit.
const submittedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Config holds quote processing settings.
type Config struct {
	Delay      time.Duration `env:"QUOTE_DELAY" envDefault:"500ms"`
	LedgerPath string        `env:"QUOTE_LEDGER_PATH"`
}

// Submission is one accepted request as handed to a Ledger.
type Submission struct {
	ID         string
	Request    Request
	ReceivedAt time.Time
}

// Ledger persists accepted submissions.
type Ledger interface {
	Record(ctx context.Context, submission Submission) error
}

// Receipt is returned to the caller once a request is accepted.
type Receipt struct {
	QuoteID       string `json:"-"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	SubmittedAt   string `json:"submittedAt"`
}

// Options configures a Service. Zero values pick defaults.
type Options struct {
	// Delay of zero uses DefaultDelay; a negative delay disables it.
	Delay    time.Duration
	Ledger   Ledger
	Logger   *zap.Logger
	Messages *catalog.Bundle
	Now      func() time.Time
}

// Service accepts quote requests.
type Service struct {
	validator *Validator
	ledger    Ledger
	logger    *zap.Logger
	delay     time.Duration
	now       func() time.Time
}

// NewService builds a quote service.
func NewService(opts Options) *Service {
	messages := opts.Messages
	if messages == nil {
		messages = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	if delay < 0 {
		delay = 0
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		validator: NewValidator(messages.WithLogger(logger)),
		ledger:    opts.Ledger,
		logger:    logger,
		delay:     delay,
		now:       now,
	}
}

// Validator exposes the request validator used by Submit.
func (s *Service) Validator() *Validator {
	return s.validator
}

// Submit validates req, waits out the processing delay, then mints a quote id.
// Validation failures are returned as *ValidationError.
func (s *Service) Submit(ctx context.Context, req Request) (Receipt, error) {
	if s == nil {
		return Receipt{}, errors.New("quote service is not configured")
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "quote.Submit")
	defer span.End()

	if err := s.validator.Validate(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return Receipt{}, err
	}

	if err := s.wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled")
		return Receipt{}, err
	}

	receivedAt := s.now().UTC()
	quoteID, err := id.NewQuoteID(receivedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "id generation failed")
		return Receipt{}, fmt.Errorf("generate quote id: %w", err)
	}
	span.SetAttributes(
		attribute.String("quote.id", quoteID),
		attribute.Int("quote.products", len(req.InterestedProducts)),
	)

	s.logger.Info("quote request received", submissionFields(quoteID, req)...)

	if s.ledger != nil {
		submission := Submission{ID: quoteID, Request: req, ReceivedAt: receivedAt}
		if err := s.ledger.Record(ctx, submission); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "ledger write failed")
			return Receipt{}, fmt.Errorf("record quote %s: %w", quoteID, err)
		}
	}

	submittedAt := req.SubmittedAt
	if submittedAt == "" {
		submittedAt = receivedAt.Format(submittedAtLayout)
	}
	return Receipt{
		QuoteID:       quoteID,
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		SubmittedAt:   submittedAt,
	}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func submissionFields(quoteID string, req Request) []zap.Field {
	quantity := 0.0
	if req.QuantityInTons != nil {
		quantity = *req.QuantityInTons
	}
	return []zap.Field{
		zap.String("quote_id", quoteID),
		zap.String("company_name", req.CompanyName),
		zap.String("contact_person", req.ContactPerson),
		zap.String("email", req.Email),
		zap.String("phone", orNotProvided(req.Phone)),
		zap.String("country", req.Country),
		zap.Strings("interested_products", req.InterestedProducts),
		zap.Float64("quantity_tons", quantity),
		zap.String("packaging", orNotProvided(req.PackagingRequirements)),
		zap.String("delivery_timeline", orNotProvided(req.DeliveryTimeline)),
		zap.String("message", orNotProvided(req.Message)),
		zap.String("locale", string(requestLocale(req.Locale))),
	}
}

func orNotProvided(value string) string {
	if value == "" {
		return "not provided"
	}
	return value
}
