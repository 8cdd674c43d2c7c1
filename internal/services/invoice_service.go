package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"billbook/internal/billing"
	apperrors "billbook/internal/errors"
	"billbook/internal/models"
)

const (
	invoiceMargin   = 10.0
	invoiceRowH     = 8.0
	invoiceFont     = "Helvetica"
	invoiceThankYou = "Thank you for your business!"
)

var invoiceColumns = []struct {
	title string
	width float64
	align string
}{
	{"Business", 70, "L"},
	{"Stocks", 35, "R"},
	{"Market Value", 40, "R"},
	{"Total", 45, "R"},
}

// invoiceService renders records as A4 PDF invoices.
type invoiceService struct {
	currencySymbol string
}

// NewInvoiceService creates a new InvoiceRenderer. Amounts are prefixed with
// currencySymbol.
func NewInvoiceService(currencySymbol string) InvoiceRenderer {
	return &invoiceService{currencySymbol: currencySymbol}
}

// ContentType returns the MIME type of rendered invoices.
func (s *invoiceService) ContentType() string {
	return "application/pdf"
}

// FileName returns the download name for a record's invoice.
func (s *invoiceService) FileName(record *models.Record) string {
	return fmt.Sprintf("invoice_%s.pdf", record.InvoiceNumber)
}

// Render draws the invoice for a saved record. Only stored values are
// printed: the tax lines come from the stored rates and TOTAL is the stored
// total.
func (s *invoiceService) Render(record *models.Record) ([]byte, error) {
	if record == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "record is required")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+record.InvoiceNumber, false)
	pdf.SetMargins(invoiceMargin+5, invoiceMargin+5, invoiceMargin+5)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	pdf.SetLineWidth(0.5)
	pdf.Rect(invoiceMargin, invoiceMargin, pageW-2*invoiceMargin, pageH-2*invoiceMargin, "D")
	pdf.SetLineWidth(0.2)

	pdf.SetFont(invoiceFont, "B", 24)
	pdf.CellFormat(0, 14, "Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(invoiceFont, "", 11)
	pdf.CellFormat(0, 6, tr("Invoice No: "+record.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Date: "+record.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("GST Number: "+record.GSTNumber), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(invoiceFont, "B", 12)
	pdf.CellFormat(0, 7, "Pay To:", "", 1, "L", false, 0, "")
	pdf.SetFont(invoiceFont, "", 11)
	pdf.CellFormat(0, 6, tr(record.Name), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 6, tr(record.Address), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont(invoiceFont, "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range invoiceColumns {
		pdf.CellFormat(col.width, invoiceRowH, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	breakdown := billing.Calculate(record.Stocks, record.MarketValue, record.SGST, record.CGST)

	pdf.SetFont(invoiceFont, "", 11)
	cells := []string{
		tr(record.Business),
		formatQuantity(record.Stocks),
		tr(s.money(record.MarketValue)),
		tr(s.money(breakdown.Subtotal)),
	}
	for i, col := range invoiceColumns {
		pdf.CellFormat(col.width, invoiceRowH, cells[i], "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)

	labelW := invoiceColumns[0].width + invoiceColumns[1].width + invoiceColumns[2].width
	valueW := invoiceColumns[3].width
	summary := []struct {
		label string
		value float64
		bold  bool
	}{
		{"SUBTOTAL", breakdown.Subtotal, false},
		{fmt.Sprintf("SGST (%s%%)", formatQuantity(record.SGST)), breakdown.SGSTAmount, false},
		{fmt.Sprintf("CGST (%s%%)", formatQuantity(record.CGST)), breakdown.CGSTAmount, false},
		{"TOTAL", record.Total, true},
	}
	for _, line := range summary {
		style := ""
		if line.bold {
			style = "B"
		}
		pdf.SetFont(invoiceFont, style, 11)
		pdf.CellFormat(labelW, invoiceRowH, line.label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, invoiceRowH, tr(s.money(line.value)), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(12)
	pdf.SetFont(invoiceFont, "I", 12)
	pdf.CellFormat(0, 8, invoiceThankYou, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvoiceRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func (s *invoiceService) money(v float64) string {
	return s.currencySymbol + decimal.NewFromFloat(v).StringFixed(2)
}

// formatQuantity prints v without trailing zeros.
func formatQuantity(v float64) string {
	return decimal.NewFromFloat(v).String()
}
