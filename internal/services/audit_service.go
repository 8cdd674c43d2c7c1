package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"billbook/internal/logger"
	"billbook/internal/models"
)

// Audit actions.
const (
	AuditCreateCustomer = "CREATE_CUSTOMER"
	AuditUpdateCustomer = "UPDATE_CUSTOMER"
	AuditDeleteCustomer = "DELETE_CUSTOMER"
	AuditCreateRecord   = "CREATE_RECORD"
)

// Audited resource types.
const (
	ResourceCustomer = "customer"
	ResourceRecord   = "record"
)

// auditService writes audit entries to the audit_logs table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log stores entry. Failures are logged and swallowed so a successful write
// is never reported as failed because its audit row could not be saved.
func (s *auditService) Log(entry AuditEntry) {
	row := &models.AuditLog{
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		RequestID:    entry.RequestID,
		IPAddress:    entry.IPAddress,
	}

	if entry.Changes != nil {
		data, err := json.Marshal(entry.Changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", entry.Action)
			data = []byte("{}")
		}
		row.Changes = string(data)
	}

	if err := s.db.Create(row).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", entry.Action,
			"resource_type", entry.ResourceType,
			"resource_id", entry.ResourceID,
			"request_id", entry.RequestID,
		)
	}
}
