// Package id mints identifiers for requests and quote submissions.
package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	quotePrefix       = "QT-"
	quoteSuffixLength = 9
	quoteAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random v4 UUID encoded as 26 lowercase base32 characters.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(idEncoding.EncodeToString(value[:])), nil
}

// NewQuoteID returns a tracking id of the form QT-<unix-ms>-<9 uppercase
// alphanumerics>.
func NewQuoteID(now time.Time) (string, error) {
	alphabetSize := big.NewInt(int64(len(quoteAlphabet)))
	var b strings.Builder
	b.Grow(len(quotePrefix) + 14 + quoteSuffixLength)
	b.WriteString(quotePrefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('-')
	for i := 0; i < quoteSuffixLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate quote id: %w", err)
		}
		b.WriteByte(quoteAlphabet[n.Int64()])
	}
	return b.String(), nil
}
