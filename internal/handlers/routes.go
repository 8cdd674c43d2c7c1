package handlers

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/middleware"
)

// RegisterRoutes mounts the customer and record endpoints on v1. Writes go
// through the API key guard; reads stay open.
func RegisterRoutes(v1 *gin.RouterGroup, customers *CustomerHandler, records *RecordHandler, apiKey string) {
	guard := middleware.RequireAPIKey(apiKey)

	customerRoutes := v1.Group("/customers")
	customerRoutes.GET("", customers.GetCustomers)
	customerRoutes.GET("/:id", customers.GetCustomerByID)
	customerRoutes.POST("", guard, customers.CreateCustomer)
	customerRoutes.PUT("/:id", guard, customers.UpdateCustomer)
	customerRoutes.DELETE("/:id", guard, customers.DeleteCustomer)

	v1.POST("/calculate", records.Calculate)

	recordRoutes := v1.Group("/records")
	recordRoutes.GET("", records.GetRecords)
	recordRoutes.POST("", guard, records.CreateRecord)
	recordRoutes.GET("/next-invoice-number", records.NextInvoiceNumber)
	recordRoutes.GET("/filter", records.FilterRecords)
	recordRoutes.GET("/suggestions", records.SuggestNames)
	recordRoutes.GET("/export", records.ExportRecords)
	recordRoutes.GET("/:id", records.GetRecordByID)
	recordRoutes.GET("/:id/invoice", records.DownloadInvoice)
}
