// Package billing holds the pure billing rules: taxed totals, invoice
// numbering and record filtering. Nothing in this package performs I/O or
// keeps state between calls, so every function is safe for concurrent use.
package billing

import (
	"math"

	apperrors "billbook/internal/errors"
)

// Breakdown is the itemised result of a taxed sale.
type Breakdown struct {
	Subtotal   float64 `json:"subtotal"`
	SGSTAmount float64 `json:"sgst_amount"`
	CGSTAmount float64 `json:"cgst_amount"`
	Total      float64 `json:"total"`
}

// Calculate applies the SGST and CGST percentages to stocks*marketValue.
// Inputs are not validated; see ValidateSale.
func Calculate(stocks, marketValue, sgstRate, cgstRate float64) Breakdown {
	subtotal := stocks * marketValue
	sgst := subtotal * sgstRate / 100
	cgst := subtotal * cgstRate / 100
	return Breakdown{
		Subtotal:   subtotal,
		SGSTAmount: sgst,
		CGSTAmount: cgst,
		Total:      subtotal + sgst + cgst,
	}
}

// ComputeTotal returns the tax-inclusive amount for a sale.
func ComputeTotal(stocks, marketValue, sgstRate, cgstRate float64) float64 {
	return Calculate(stocks, marketValue, sgstRate, cgstRate).Total
}

// ValidateSale checks the preconditions of Calculate: every input must be a
// finite, non-negative number.
func ValidateSale(stocks, marketValue, sgstRate, cgstRate float64) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"stocks", stocks},
		{"market_value", marketValue},
		{"sgst", sgstRate},
		{"cgst", cgstRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, f.name+" must be a finite number")
		}
		if f.value < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, f.name+" must not be negative")
		}
	}
	return nil
}

// TotalsMatch reports whether a client-supplied total agrees with the
// computed one to within half a cent.
func TotalsMatch(submitted, computed float64) bool {
	return math.Abs(submitted-computed) <= 0.005
}
