package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"billbook/internal/billing"
	apperrors "billbook/internal/errors"
	"billbook/internal/models"
	"billbook/internal/pagination"
	"billbook/internal/validator"
)

// recordService handles record-related business logic.
type recordService struct {
	db              *gorm.DB
	customerService CustomerServicer
	now             func() time.Time
}

// NewRecordService creates a new RecordServicer.
func NewRecordService(db *gorm.DB, customerService CustomerServicer) RecordServicer {
	return &recordService{
		db:              db,
		customerService: customerService,
		now:             time.Now,
	}
}

// Quote prices a sale for a customer and proposes the invoice number the
// sale would receive if saved now.
func (s *recordService) Quote(customerName string, stocks, marketValue float64) (*Quote, error) {
	customer, err := s.customerService.GetCustomerByName(customerName)
	if err != nil {
		return nil, err
	}

	if err := billing.ValidateSale(stocks, marketValue, customer.SGST, customer.CGST); err != nil {
		return nil, err
	}

	invoiceNumber, err := s.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}

	return &Quote{
		Customer:      customer,
		Stocks:        stocks,
		MarketValue:   marketValue,
		Breakdown:     billing.Calculate(stocks, marketValue, customer.SGST, customer.CGST),
		InvoiceNumber: invoiceNumber,
	}, nil
}

// CreateRecord saves a sale as a frozen snapshot of the customer. The total
// is always recomputed here; a client-supplied total only serves as a check.
func (s *recordService) CreateRecord(input RecordInput) (*models.Record, error) {
	customer, err := s.customerService.GetCustomerByName(input.CustomerName)
	if err != nil {
		return nil, err
	}

	if err := billing.ValidateSale(input.Stocks, input.MarketValue, customer.SGST, customer.CGST); err != nil {
		return nil, err
	}

	total := billing.ComputeTotal(input.Stocks, input.MarketValue, customer.SGST, customer.CGST)
	if input.Total != nil && !billing.TotalsMatch(*input.Total, total) {
		return nil, apperrors.ErrTotalMismatch
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = s.now().Format(validator.DateLayout)
	} else if _, err := time.Parse(validator.DateLayout, date); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}

	record := &models.Record{
		Name:        customer.Name,
		Address:     customer.Address,
		Business:    customer.Business,
		GSTNumber:   customer.GSTNumber,
		SGST:        customer.SGST,
		CGST:        customer.CGST,
		Date:        date,
		Stocks:      input.Stocks,
		MarketValue: input.MarketValue,
		Total:       total,
	}

	// Reading the last number and inserting happen in one transaction. A
	// concurrent save that took the same number trips the unique index on
	// invoice_number and surfaces as INVOICE_NUMBER_TAKEN.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		number, txErr := nextInvoiceNumber(tx)
		if txErr != nil {
			return txErr
		}
		record.InvoiceNumber = number

		if txErr := tx.Create(record).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrDuplicatedKey) {
				return apperrors.Wrap(apperrors.ErrInvoiceNumberTaken, txErr)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// nextInvoiceNumber derives the next number from the most recently inserted
// record.
func nextInvoiceNumber(db *gorm.DB) (string, error) {
	var last models.Record
	err := db.Select("id", "invoice_number").Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return billing.NextInvoiceNumber(nil)
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return billing.NextInvoiceNumber([]string{last.InvoiceNumber})
}

// NextInvoiceNumber returns the invoice number the next saved record gets.
func (s *recordService) NextInvoiceNumber() (string, error) {
	return nextInvoiceNumber(s.db)
}

// GetRecords retrieves a paginated list of records in insertion order.
func (s *recordService) GetRecords(page pagination.PageRequest) (*pagination.PageResponse[models.Record], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Record{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.Record
	if err := s.db.Scopes(page.InsertionOrder()).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllRecords retrieves every record in insertion order.
func (s *recordService) GetAllRecords() ([]models.Record, error) {
	var records []models.Record
	if err := s.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// GetRecordByID retrieves a record by ID
func (s *recordService) GetRecordByID(id uint) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// FilterRecords applies billing.Filter to the full record list. The
// informational ErrNoFilterApplied and ErrNoMatch are passed through
// alongside the unfiltered records.
func (s *recordService) FilterRecords(namePrefix, dateSubstring string) ([]models.Record, error) {
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}
	return billing.Filter(records, namePrefix, dateSubstring)
}

// SuggestNames returns record names matching what the user has typed.
func (s *recordService) SuggestNames(typedPrefix string) ([]string, error) {
	if strings.TrimSpace(typedPrefix) == "" {
		return []string{}, nil
	}
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}
	return billing.SuggestNames(records, strings.TrimSpace(typedPrefix)), nil
}
