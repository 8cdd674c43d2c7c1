package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "billbook/internal/errors"
	"billbook/internal/models"
)

// AssertAppError fails unless err is an *AppError carrying code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %q, got nil", code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != code {
		t.Errorf("expected error code %q, got %q (message: %s)", code, appErr.Code, appErr.Message)
	}
}

// AssertNotice fails unless err is an informational notice carrying code.
// Notices ride along with a usable result instead of replacing it.
func AssertNotice(t *testing.T, err error, code string) {
	t.Helper()

	notice, ok := apperrors.AsNotice(err)
	if !ok {
		t.Fatalf("expected notice %q, got %v", code, err)
	}
	if notice.Code != code {
		t.Errorf("expected notice %q, got %q", code, notice.Code)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertInvoiceNumbers fails unless records carry exactly the given invoice
// numbers, in order.
func AssertInvoiceNumbers(t *testing.T, records []models.Record, want ...string) {
	t.Helper()

	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.InvoiceNumber
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected invoice numbers [%s], got [%s]", strings.Join(want, " "), strings.Join(got, " "))
	}
}
