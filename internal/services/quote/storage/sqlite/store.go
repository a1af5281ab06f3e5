// Package sqlite records accepted quote requests in a SQLite ledger.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/thegreatbeans/web/internal/platform/storage/sqlitemigrate"
	"github.com/thegreatbeans/web/internal/services/quote"
	"github.com/thegreatbeans/web/internal/services/quote/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrNotFound is returned when a quote id has no ledger row.
var ErrNotFound = errors.New("quote not found")

// ErrDuplicate is returned when a quote id was already recorded.
var ErrDuplicate = errors.New("quote already recorded")

// Store persists quote submissions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite quote ledger and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts one accepted submission.
func (s *Store) Record(ctx context.Context, submission quote.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	quoteID := strings.TrimSpace(submission.ID)
	if quoteID == "" {
		return fmt.Errorf("quote id is required")
	}
	req := submission.Request
	if req.QuantityInTons == nil {
		return fmt.Errorf("quantity is required")
	}
	products, err := json.Marshal(req.InterestedProducts)
	if err != nil {
		return fmt.Errorf("encode interested products: %w", err)
	}
	receivedAt := submission.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO quote_requests (
		   quote_id,
		   company_name,
		   contact_person,
		   email,
		   phone,
		   country,
		   interested_products,
		   quantity_tons,
		   packaging_requirements,
		   delivery_timeline,
		   message,
		   locale,
		   submitted_at,
		   received_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		quoteID,
		req.CompanyName,
		req.ContactPerson,
		req.Email,
		req.Phone,
		req.Country,
		string(products),
		*req.QuantityInTons,
		req.PackagingRequirements,
		req.DeliveryTimeline,
		req.Message,
		ledgerLocale(req.Locale),
		req.SubmittedAt,
		toMillis(receivedAt),
	)
	if err != nil {
		if isQuoteUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert quote request: %w", err)
	}
	return nil
}

// Get loads one recorded submission by quote id.
func (s *Store) Get(ctx context.Context, quoteID string) (quote.Submission, error) {
	if err := ctx.Err(); err != nil {
		return quote.Submission{}, err
	}
	if s == nil || s.sqlDB == nil {
		return quote.Submission{}, fmt.Errorf("storage is not configured")
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return quote.Submission{}, fmt.Errorf("quote id is required")
	}

	var (
		submission quote.Submission
		products   string
		quantity   float64
		receivedAt int64
	)
	req := &submission.Request
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT
		   quote_id,
		   company_name,
		   contact_person,
		   email,
		   phone,
		   country,
		   interested_products,
		   quantity_tons,
		   packaging_requirements,
		   delivery_timeline,
		   message,
		   locale,
		   submitted_at,
		   received_at
		 FROM quote_requests
		 WHERE quote_id = ?`,
		quoteID,
	).Scan(
		&submission.ID,
		&req.CompanyName,
		&req.ContactPerson,
		&req.Email,
		&req.Phone,
		&req.Country,
		&products,
		&quantity,
		&req.PackagingRequirements,
		&req.DeliveryTimeline,
		&req.Message,
		&req.Locale,
		&req.SubmittedAt,
		&receivedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quote.Submission{}, ErrNotFound
		}
		return quote.Submission{}, fmt.Errorf("get quote request: %w", err)
	}
	if err := json.Unmarshal([]byte(products), &req.InterestedProducts); err != nil {
		return quote.Submission{}, fmt.Errorf("decode interested products: %w", err)
	}
	req.QuantityInTons = &quantity
	submission.ReceivedAt = fromMillis(receivedAt)
	return submission, nil
}

// Count returns the number of recorded submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM quote_requests`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count quote requests: %w", err)
	}
	return count, nil
}

func ledgerLocale(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "en"
	}
	return raw
}

func isQuoteUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "quote_requests.quote_id")
}

var _ quote.Ledger = (*Store)(nil)
