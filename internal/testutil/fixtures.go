package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"billbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCustomer creates a customer with a unique name and 9% SGST and
// CGST.
func CreateTestCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()
	return CreateTestCustomerWithName(t, db, fmt.Sprintf("Customer %d", nextID()))
}

// CreateTestCustomerWithName creates a customer with the given name.
func CreateTestCustomerWithName(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		Name:      name,
		Address:   "12 Market Road, Chennai",
		Business:  "Textiles",
		GSTNumber: fmt.Sprintf("33ABCDE%04dF1Z5", nextID()%10000),
		SGST:      9,
		CGST:      9,
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}

// CreateTestRecord stores a record for customer with the given invoice
// number and date. The total applies the customer's rates to 10 units at
// 100 each.
func CreateTestRecord(t *testing.T, db *gorm.DB, customer *models.Customer, invoiceNumber, date string) *models.Record {
	t.Helper()

	stocks, marketValue := 10.0, 100.0
	subtotal := stocks * marketValue
	record := &models.Record{
		Name:          customer.Name,
		Address:       customer.Address,
		Business:      customer.Business,
		GSTNumber:     customer.GSTNumber,
		SGST:          customer.SGST,
		CGST:          customer.CGST,
		InvoiceNumber: invoiceNumber,
		Date:          date,
		Stocks:        stocks,
		MarketValue:   marketValue,
		Total:         subtotal + subtotal*customer.SGST/100 + subtotal*customer.CGST/100,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}
