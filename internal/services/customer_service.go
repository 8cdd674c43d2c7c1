package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"billbook/internal/billing"
	apperrors "billbook/internal/errors"
	"billbook/internal/models"
	"billbook/internal/pagination"
)

// customerService handles customer-related business logic.
type customerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new CustomerServicer.
func NewCustomerService(db *gorm.DB) CustomerServicer {
	return &customerService{db: db}
}

// normalize trims the text fields and checks that every field is present
// and both tax rates are usable.
func (f *CustomerFields) normalize() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Address = strings.TrimSpace(f.Address)
	f.Business = strings.TrimSpace(f.Business)
	f.GSTNumber = strings.TrimSpace(f.GSTNumber)

	if f.Name == "" || f.Address == "" || f.Business == "" || f.GSTNumber == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Please enter all fields")
	}
	// Tax rates share the calculator's preconditions.
	return billing.ValidateSale(0, 0, f.SGST, f.CGST)
}

// CreateCustomer creates a new customer
func (s *customerService) CreateCustomer(fields CustomerFields) (*models.Customer, error) {
	if err := fields.normalize(); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(fields.Name, 0); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:      fields.Name,
		Address:   fields.Address,
		Business:  fields.Business,
		GSTNumber: fields.GSTNumber,
		SGST:      fields.SGST,
		CGST:      fields.CGST,
	}

	if err := s.db.Create(customer).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return customer, nil
}

// ensureNameAvailable fails when another live customer already uses name.
// exceptID excludes the customer being updated.
func (s *customerService) ensureNameAvailable(name string, exceptID uint) error {
	var count int64
	q := s.db.Model(&models.Customer{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateCustomerName
	}
	return nil
}

// GetCustomers retrieves a paginated list of customers.
func (s *customerService) GetCustomers(page pagination.PageRequest) (*pagination.PageResponse[models.Customer], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Customer{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var customers []models.Customer
	if err := s.db.Scopes(page.InsertionOrder()).Find(&customers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(customers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllCustomers retrieves every customer in creation order.
func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return customers, nil
}

// GetCustomerByID retrieves a customer by ID
func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &customer, nil
}

// GetCustomerByName retrieves a customer by exact name.
func (s *customerService) GetCustomerByName(name string) (*models.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "customer name is required")
	}

	var customer models.Customer
	if err := s.db.Where("name = ?", name).Order("id ASC").First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &customer, nil
}

// UpdateCustomer replaces every editable field of a customer. Records
// already saved for the customer keep their snapshot.
func (s *customerService) UpdateCustomer(id uint, fields CustomerFields) (*models.Customer, error) {
	if err := fields.normalize(); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if fields.Name != customer.Name {
		if err := s.ensureNameAvailable(fields.Name, id); err != nil {
			return nil, err
		}
	}

	// A map keeps zero tax rates in the update.
	updates := map[string]interface{}{
		"name":       fields.Name,
		"address":    fields.Address,
		"business":   fields.Business,
		"gst_number": fields.GSTNumber,
		"sgst":       fields.SGST,
		"cgst":       fields.CGST,
	}
	if err := s.db.Model(customer).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetCustomerByID(id)
}

// DeleteCustomer deletes a customer
func (s *customerService) DeleteCustomer(id uint) error {
	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(customer).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
