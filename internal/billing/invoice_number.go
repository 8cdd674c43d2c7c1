package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "billbook/internal/errors"
)

// InvoicePrefix precedes the sequence number of every invoice.
const InvoicePrefix = "IO"

// FirstInvoiceNumber is issued when no record exists yet.
const FirstInvoiceNumber = InvoicePrefix + "1"

// FormatInvoiceNumber renders sequence n as an invoice number.
func FormatInvoiceNumber(n int) string {
	return InvoicePrefix + strconv.Itoa(n)
}

// ParseInvoiceNumber extracts the sequence number from an invoice number of
// the form IO<n>.
func ParseInvoiceNumber(s string) (int, error) {
	digits, ok := strings.CutPrefix(s, InvoicePrefix)
	if !ok || digits == "" {
		return 0, apperrors.WithMessage(apperrors.ErrMalformedInvoiceNumber,
			fmt.Sprintf("invoice number %q does not start with %s", s, InvoicePrefix))
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, apperrors.WithMessage(apperrors.ErrMalformedInvoiceNumber,
				fmt.Sprintf("invoice number %q has a non-numeric suffix", s))
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrMalformedInvoiceNumber, err)
	}
	return n, nil
}

// NextInvoiceNumber proposes the number following the last entry of
// existing, which must be in creation order. The last entry wins even when
// an earlier one is numerically larger.
func NextInvoiceNumber(existing []string) (string, error) {
	if len(existing) == 0 {
		return FirstInvoiceNumber, nil
	}
	return IncrementInvoiceNumber(existing[len(existing)-1])
}

// IncrementInvoiceNumber returns the invoice number that follows current.
func IncrementInvoiceNumber(current string) (string, error) {
	n, err := ParseInvoiceNumber(current)
	if err != nil {
		return "", err
	}
	if n == math.MaxInt {
		return "", apperrors.WithMessage(apperrors.ErrMalformedInvoiceNumber,
			fmt.Sprintf("invoice number %q cannot be incremented", current))
	}
	return FormatInvoiceNumber(n + 1), nil
}
