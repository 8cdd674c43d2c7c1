package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/billing"
	apperrors "billbook/internal/errors"
	"billbook/internal/logger"
	"billbook/internal/middleware"
	"billbook/internal/models"
	"billbook/internal/pagination"
	"billbook/internal/services"
)

// RecordHandler handles sale records, the calculator and invoice downloads.
type RecordHandler struct {
	recordService services.RecordServicer
	invoices      services.InvoiceRenderer
	exporter      services.RecordExporter
	auditService  services.AuditServicer
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(
	recordService services.RecordServicer,
	invoices services.InvoiceRenderer,
	exporter services.RecordExporter,
	auditService services.AuditServicer,
) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		invoices:      invoices,
		exporter:      exporter,
		auditService:  auditService,
	}
}

// CalculateRequest represents the calculator input.
type CalculateRequest struct {
	CustomerName string   `json:"customer_name" binding:"required,not_blank"`
	Stocks       *float64 `json:"stocks" binding:"required,gte=0"`
	MarketValue  *float64 `json:"market_value" binding:"required,gte=0"`
}

// CreateRecordRequest represents the request payload for saving a sale.
type CreateRecordRequest struct {
	CustomerName string   `json:"customer_name" binding:"required,not_blank"`
	Stocks       *float64 `json:"stocks" binding:"required,gte=0"`
	MarketValue  *float64 `json:"market_value" binding:"required,gte=0"`
	Date         string   `json:"date" binding:"omitempty,iso_date"`
	Total        *float64 `json:"total" binding:"omitempty,gte=0"`
}

// CreateRecordResponse is the saved record plus the invoice number the
// following save will receive.
type CreateRecordResponse struct {
	Record            *models.Record `json:"record"`
	NextInvoiceNumber string         `json:"next_invoice_number,omitempty"`
}

// FilterQuery holds the record filter inputs.
type FilterQuery struct {
	Name string `form:"name" binding:"max=255"`
	Date string `form:"date" binding:"max=10"`
}

// FilterResponse is a page of filtered records plus an optional notice when
// no filter was given or nothing matched.
type FilterResponse struct {
	pagination.PageResponse[models.Record]
	Notice *ErrorDetail `json:"notice,omitempty"`
}

// Calculate handles pricing a sale without saving it
// @Summary     Calculate a sale
// @Description Compute subtotal, SGST, CGST and total for a customer and propose the next invoice number
// @Tags        records
// @Accept      json
// @Produce     json
// @Param       request body CalculateRequest true "Sale details"
// @Success     200 {object} services.Quote "Quote"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     409 {object} ErrorResponse "Last invoice number is malformed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /calculate [post]
func (h *RecordHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	quote, err := h.recordService.Quote(req.CustomerName, *req.Stocks, *req.MarketValue)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// CreateRecord handles saving a sale
// @Summary     Save a sale record
// @Description Snapshot the customer, compute the total and assign the next invoice number
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateRecordRequest true "Sale details"
// @Success     201 {object} CreateRecordResponse "Record created"
// @Failure     400 {object} ErrorResponse "Invalid input or total mismatch"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     409 {object} ErrorResponse "Last invoice number is malformed or was taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.CreateRecord(services.RecordInput{
		CustomerName: req.CustomerName,
		Stocks:       *req.Stocks,
		MarketValue:  *req.MarketValue,
		Date:         req.Date,
		Total:        req.Total,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(auditEntry(c, services.AuditCreateRecord, services.ResourceRecord, record.ID,
		map[string]interface{}{"invoice_number": record.InvoiceNumber, "name": record.Name, "total": record.Total}))

	resp := CreateRecordResponse{Record: record}
	next, err := billing.IncrementInvoiceNumber(record.InvoiceNumber)
	if err != nil {
		// The record is saved; only the hint for the next save is missing.
		logger.Get().Warnw("cannot derive next invoice number",
			"request_id", middleware.RequestID(c), "invoice_number", record.InvoiceNumber, "error", err)
	} else {
		resp.NextInvoiceNumber = next
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRecords handles listing records
// @Summary     List records
// @Description Get a paginated list of saved records in insertion order
// @Tags        records
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page"
// @Success     200 {object} pagination.PageResponse[models.Record] "Records"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records [get]
func (h *RecordHandler) GetRecords(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.recordService.GetRecords(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecordByID handles the retrieval of a specific record
// @Summary     Get record by ID
// @Tags        records
// @Produce     json
// @Param       id path int true "Record ID"
// @Success     200 {object} models.Record "Record details"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/{id} [get]
func (h *RecordHandler) GetRecordByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.GetRecordByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// NextInvoiceNumber handles peeking at the next invoice number
// @Summary     Next invoice number
// @Tags        records
// @Produce     json
// @Success     200 {object} map[string]string "Next invoice number"
// @Failure     409 {object} ErrorResponse "Last invoice number is malformed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/next-invoice-number [get]
func (h *RecordHandler) NextInvoiceNumber(c *gin.Context) {
	number, err := h.recordService.NextInvoiceNumber()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice_number": number})
}

// FilterRecords handles filtering records by name prefix and date
// @Summary     Filter records
// @Description Case-insensitive name prefix and date substring filter. When no filter is given or nothing matches, all records are returned with a notice.
// @Tags        records
// @Produce     json
// @Param       name      query string false "Name prefix"
// @Param       date      query string false "Date fragment, e.g. 2024-05"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Items per page"
// @Success     200 {object} FilterResponse "Records"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/filter [get]
func (h *RecordHandler) FilterRecords(c *gin.Context) {
	var query FilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	records, err := h.recordService.FilterRecords(query.Name, query.Date)
	notice, informational := noticeFrom(err)
	if err != nil && !informational {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, FilterResponse{
		PageResponse: pagination.PageSlice(records, page),
		Notice:       notice,
	})
}

// SuggestNames handles name autocompletion
// @Summary     Suggest record names
// @Description Distinct record names starting with the typed prefix, in first-seen order
// @Tags        records
// @Produce     json
// @Param       prefix query string false "Typed prefix"
// @Success     200 {object} map[string][]string "Suggestions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/suggestions [get]
func (h *RecordHandler) SuggestNames(c *gin.Context) {
	names, err := h.recordService.SuggestNames(c.Query("prefix"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": names})
}

// ExportRecords handles downloading records as a spreadsheet
// @Summary     Export records
// @Description Download the filtered records as an XLSX workbook. Without a filter, or when nothing matches, every record is exported.
// @Tags        records
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       name query string false "Name prefix"
// @Param       date query string false "Date fragment"
// @Success     200 {file} file "Workbook"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/export [get]
func (h *RecordHandler) ExportRecords(c *gin.Context) {
	var query FilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	records, err := h.recordService.FilterRecords(query.Name, query.Date)
	if _, informational := apperrors.AsNotice(err); err != nil && !informational {
		respondWithError(c, err)
		return
	}

	data, err := h.exporter.Export(records)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sendAttachment(c, http.StatusOK, h.exporter.FileName(), h.exporter.ContentType(), data)
}

// DownloadInvoice handles rendering a record's invoice
// @Summary     Download invoice
// @Tags        records
// @Produce     application/pdf
// @Param       id path int true "Record ID"
// @Success     200 {file} file "Invoice PDF"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /records/{id}/invoice [get]
func (h *RecordHandler) DownloadInvoice(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.recordService.GetRecordByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.invoices.Render(record)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sendAttachment(c, http.StatusOK, h.invoices.FileName(record), h.invoices.ContentType(), data)
}
