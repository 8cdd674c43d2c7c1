// Package models defines the GORM models persisted by billbook.
package models

// All returns every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Record{},
		&AuditLog{},
	}
}
