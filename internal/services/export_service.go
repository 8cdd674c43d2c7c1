package services

import (
	"github.com/xuri/excelize/v2"

	apperrors "billbook/internal/errors"
	"billbook/internal/models"
)

// RecordsSheet is the worksheet holding exported records.
const RecordsSheet = "Records"

var exportHeader = []interface{}{
	"Invoice Number", "Date", "Name", "Address", "Business", "GST Number",
	"SGST (%)", "CGST (%)", "Stocks", "Market Value", "Total",
}

// exportService writes records to an XLSX workbook.
type exportService struct{}

// NewExportService creates a new RecordExporter.
func NewExportService() RecordExporter {
	return &exportService{}
}

// ContentType returns the MIME type of exported workbooks.
func (s *exportService) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the download name for an export.
func (s *exportService) FileName() string {
	return "records.xlsx"
}

// Export writes one row per record, in the order given, below a header row.
func (s *exportService) Export(records []models.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	if err := f.SetSheetRow(RecordsSheet, "A1", &exportHeader); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
		}
		row := []interface{}{
			r.InvoiceNumber, r.Date, r.Name, r.Address, r.Business, r.GSTNumber,
			r.SGST, r.CGST, r.Stocks, r.MarketValue, r.Total,
		}
		if err := f.SetSheetRow(RecordsSheet, cell, &row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
		}
	}

	if err := f.SetPanes(RecordsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}
