package models

// Record is a frozen snapshot of one taxed sale. The customer columns are
// copied at save time so later customer edits never change issued invoices.
type Record struct {
	Base
	Name          string  `gorm:"size:255;not null;index" json:"name"`
	Address       string  `gorm:"type:text" json:"address"`
	Business      string  `gorm:"size:255" json:"business"`
	GSTNumber     string  `gorm:"column:gst_number;size:64" json:"gst_number"`
	SGST          float64 `gorm:"column:sgst;not null" json:"sgst"`
	CGST          float64 `gorm:"column:cgst;not null" json:"cgst"`
	InvoiceNumber string  `gorm:"size:32;not null;uniqueIndex" json:"invoice_number"`
	Date          string  `gorm:"size:10;not null;index" json:"date"`
	Stocks        float64 `gorm:"not null" json:"stocks"`
	MarketValue   float64 `gorm:"not null" json:"market_value"`
	Total         float64 `gorm:"not null" json:"total"`
}
