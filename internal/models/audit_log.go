package models

// AuditLog records every write made through the API. RequestID ties an entry
// to the request log line that produced it.
type AuditLog struct {
	Base
	Action       string `gorm:"size:64;not null" json:"action"`
	ResourceType string `gorm:"size:64;not null;index" json:"resource_type"`
	ResourceID   uint   `gorm:"index" json:"resource_id"`
	RequestID    string `gorm:"size:36;index" json:"request_id,omitempty"`
	IPAddress    string `gorm:"size:64" json:"ip_address"`
	Changes      string `gorm:"type:text" json:"changes,omitempty"`
}
