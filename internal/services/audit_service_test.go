package services

import (
	"testing"

	"billbook/internal/models"
	"billbook/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(AuditEntry{
		Action:       AuditCreateCustomer,
		ResourceType: ResourceCustomer,
		ResourceID:   7,
		RequestID:    "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6b",
		IPAddress:    "10.0.0.1",
		Changes:      map[string]interface{}{"name": "Acme"},
	})
	svc.Log(AuditEntry{Action: AuditDeleteCustomer, ResourceType: ResourceCustomer, ResourceID: 7})

	var entries []models.AuditLog
	if err := db.Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Action != AuditCreateCustomer || entries[0].ResourceID != 7 {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[0].RequestID != "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6b" {
		t.Errorf("expected request ID to be stored, got %q", entries[0].RequestID)
	}
	if entries[0].Changes != `{"name":"Acme"}` {
		t.Errorf("expected JSON changes, got %s", entries[0].Changes)
	}
	if entries[1].Changes != "" {
		t.Errorf("expected empty changes, got %s", entries[1].Changes)
	}
}

func TestAuditLogUnmarshalableChanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(AuditEntry{
		Action:       AuditCreateRecord,
		ResourceType: ResourceRecord,
		ResourceID:   1,
		Changes:      map[string]interface{}{"bad": make(chan int)},
	})

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected entry to be stored: %v", err)
	}
	if entry.Changes != "{}" {
		t.Errorf("expected {} placeholder, got %s", entry.Changes)
	}
}
