package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "billbook/internal/errors"
	"billbook/internal/middleware"
	"billbook/internal/services"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// sendAttachment writes data as a file download.
func sendAttachment(c *gin.Context, status int, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(status, contentType, data)
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// noticeFrom converts an informational error into the notice returned next
// to a successful payload.
func noticeFrom(err error) (*ErrorDetail, bool) {
	appErr, ok := apperrors.AsNotice(err)
	if !ok {
		return nil, false
	}
	return &ErrorDetail{Code: appErr.Code, Message: appErr.Message}, true
}

// auditEntry builds an audit entry for the current request.
func auditEntry(c *gin.Context, action, resourceType string, resourceID uint, changes map[string]interface{}) services.AuditEntry {
	return services.AuditEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		RequestID:    middleware.RequestID(c),
		IPAddress:    c.ClientIP(),
		Changes:      changes,
	}
}
