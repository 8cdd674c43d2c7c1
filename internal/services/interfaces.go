package services

import (
	"billbook/internal/billing"
	"billbook/internal/models"
	"billbook/internal/pagination"
)

// CustomerFields carries the editable columns of a customer.
type CustomerFields struct {
	Name      string
	Address   string
	Business  string
	GSTNumber string
	SGST      float64
	CGST      float64
}

// CustomerServicer defines the contract for customer-related business logic.
type CustomerServicer interface {
	CreateCustomer(fields CustomerFields) (*models.Customer, error)
	GetCustomers(page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error)
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
	GetCustomerByName(name string) (*models.Customer, error)
	UpdateCustomer(id uint, fields CustomerFields) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

// RecordInput is a sale to be saved. Total is optional; when present it must
// agree with the server-side computation.
type RecordInput struct {
	CustomerName string
	Stocks       float64
	MarketValue  float64
	Date         string
	Total        *float64
}

// Quote is the calculator result for a customer before anything is saved.
type Quote struct {
	Customer      *models.Customer  `json:"customer"`
	Stocks        float64           `json:"stocks"`
	MarketValue   float64           `json:"market_value"`
	Breakdown     billing.Breakdown `json:"breakdown"`
	InvoiceNumber string            `json:"invoice_number"`
}

// RecordServicer defines the contract for record-related business logic.
type RecordServicer interface {
	Quote(customerName string, stocks, marketValue float64) (*Quote, error)
	CreateRecord(input RecordInput) (*models.Record, error)
	GetRecords(page pagination.PageRequest) (*pagination.PageResponse[models.Record], error)
	GetAllRecords() ([]models.Record, error)
	GetRecordByID(id uint) (*models.Record, error)
	NextInvoiceNumber() (string, error)
	FilterRecords(namePrefix, dateSubstring string) ([]models.Record, error)
	SuggestNames(typedPrefix string) ([]string, error)
}

// InvoiceRenderer turns a saved record into a downloadable document.
type InvoiceRenderer interface {
	Render(record *models.Record) ([]byte, error)
	FileName(record *models.Record) string
	ContentType() string
}

// RecordExporter writes a set of records to a spreadsheet.
type RecordExporter interface {
	Export(records []models.Record) ([]byte, error)
	FileName() string
	ContentType() string
}

// AuditEntry describes one write to be audited.
type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   uint
	RequestID    string
	IPAddress    string
	Changes      map[string]interface{}
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(entry AuditEntry)
}
