package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "billbook/internal/errors"
	"billbook/internal/pagination"
	"billbook/internal/services"
)

// CustomerHandler handles customer-related requests.
type CustomerHandler struct {
	customerService services.CustomerServicer
	auditService    services.AuditServicer
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService services.CustomerServicer, auditService services.AuditServicer) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, auditService: auditService}
}

// CustomerRequest represents the request payload for creating or replacing a customer.
type CustomerRequest struct {
	Name      string   `json:"name" binding:"required,not_blank,max=255"`
	Address   string   `json:"address" binding:"required,not_blank,max=500"`
	Business  string   `json:"business" binding:"required,not_blank,max=255"`
	GSTNumber string   `json:"gst_number" binding:"required,not_blank,max=20"`
	SGST      *float64 `json:"sgst" binding:"required,gte=0,lte=100"`
	CGST      *float64 `json:"cgst" binding:"required,gte=0,lte=100"`
}

func (r CustomerRequest) fields() services.CustomerFields {
	return services.CustomerFields{
		Name:      r.Name,
		Address:   r.Address,
		Business:  r.Business,
		GSTNumber: r.GSTNumber,
		SGST:      *r.SGST,
		CGST:      *r.CGST,
	}
}

// CustomerResponse represents a customer in the response
type CustomerResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Business  string  `json:"business"`
	GSTNumber string  `json:"gst_number"`
	SGST      float64 `json:"sgst"`
	CGST      float64 `json:"cgst"`
}

// CreateCustomer handles the creation of a new customer
// @Summary     Create a customer
// @Description Register a customer with their GST number and tax rates
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CustomerRequest true "Customer details"
// @Success     201 {object} CustomerResponse "Customer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(req.fields())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(auditEntry(c, services.AuditCreateCustomer, services.ResourceCustomer, customer.ID,
		map[string]interface{}{"name": customer.Name, "gst_number": customer.GSTNumber}))

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// GetCustomers handles listing customers
// @Summary     List customers
// @Description Get a paginated list of customers in creation order
// @Tags        customers
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page"
// @Success     200 {object} pagination.PageResponse[CustomerResponse] "Customers"
// @Failure     400 {object} ErrorResponse "Invalid pagination"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers [get]
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.customerService.GetCustomers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomerByID handles the retrieval of a specific customer
// @Summary     Get customer by ID
// @Tags        customers
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {object} CustomerResponse "Customer details"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [get]
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomer handles replacing a customer's details. Records already
// issued keep the details they were saved with.
// @Summary     Update customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path int             true "Customer ID"
// @Param       request body CustomerRequest true "Customer details"
// @Success     200 {object} CustomerResponse "Updated customer"
// @Failure     400 {object} ErrorResponse "Invalid input or customer ID"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, req.fields())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(auditEntry(c, services.AuditUpdateCustomer, services.ResourceCustomer, customer.ID,
		map[string]interface{}{"name": customer.Name, "sgst": customer.SGST, "cgst": customer.CGST}))

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// DeleteCustomer handles deleting a customer
// @Summary     Delete customer
// @Tags        customers
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path int true "Customer ID"
// @Success     200 {object} map[string]string "Customer deleted"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(auditEntry(c, services.AuditDeleteCustomer, services.ResourceCustomer, id, nil))

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
