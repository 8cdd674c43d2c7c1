package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"billbook/internal/models"
)

func TestBillingFlow(t *testing.T) {
	app := setupApp(t)
	app.createCustomer(t, "Acme Traders", 9, 9)

	// Calculator quotes the first invoice number.
	rec := app.request(http.MethodPost, "/api/v1/calculate",
		`{"customer_name":"Acme Traders","stocks":10,"market_value":100}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("calculate failed: %d %s", rec.Code, rec.Body.String())
	}
	quote := parseJSON(t, rec)["quote"].(map[string]interface{})
	if quote["invoice_number"] != "IO1" {
		t.Errorf("expected IO1, got %v", quote["invoice_number"])
	}
	if total := quote["breakdown"].(map[string]interface{})["total"]; total != 1180.0 {
		t.Errorf("expected total 1180, got %v", total)
	}

	first := app.createRecord(t, "Acme Traders", 10, 100, "2024-05-01")
	second := app.createRecord(t, "Acme Traders", 2, 50, "2024-05-02")
	if first["invoice_number"] != "IO1" || second["invoice_number"] != "IO2" {
		t.Errorf("expected IO1 then IO2, got %v then %v", first["invoice_number"], second["invoice_number"])
	}
	if second["total"] != 118.0 {
		t.Errorf("expected total 118, got %v", second["total"])
	}

	rec = app.request(http.MethodGet, "/api/v1/records/next-invoice-number", "", "")
	if got := parseJSON(t, rec)["invoice_number"]; got != "IO3" {
		t.Errorf("expected IO3, got %v", got)
	}

	rec = app.request(http.MethodGet, "/api/v1/records", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list records failed: %d", rec.Code)
	}
	if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 2 {
		t.Errorf("expected 2 records, got %d", len(data))
	}
}

func TestRecordSnapshotSurvivesCustomerEdit(t *testing.T) {
	app := setupApp(t)
	id := app.createCustomer(t, "Acme Traders", 9, 9)
	record := app.createRecord(t, "Acme Traders", 10, 100, "2024-05-01")

	body := `{"name":"Acme Exports","address":"New Road","business":"Tea","gst_number":"33AAACB0000A1Z6","sgst":6,"cgst":6}`
	rec := app.request(http.MethodPut, fmt.Sprintf("/api/v1/customers/%d", int(id)), body, testAPIKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("update customer failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request(http.MethodGet, fmt.Sprintf("/api/v1/records/%d", int(record["id"].(float64))), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get record failed: %d", rec.Code)
	}
	stored := parseJSON(t, rec)["record"].(map[string]interface{})
	if stored["name"] != "Acme Traders" || stored["sgst"] != 9.0 || stored["total"] != 1180.0 {
		t.Errorf("expected original snapshot, got %v", stored)
	}
}

func TestFilterFlow(t *testing.T) {
	app := setupApp(t)
	app.createCustomer(t, "Alice", 5, 5)
	app.createCustomer(t, "Bob", 5, 5)
	app.createRecord(t, "Alice", 1, 10, "2024-05-01")
	app.createRecord(t, "Bob", 1, 10, "2024-05-02")
	app.createRecord(t, "Alice", 1, 10, "2024-06-01")

	t.Run("name_and_date", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/records/filter?name=AL&date=2024-05", "", "")
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 || data[0].(map[string]interface{})["invoice_number"] != "IO1" {
			t.Errorf("expected only IO1, got %v", data)
		}
		if _, ok := result["notice"]; ok {
			t.Errorf("expected no notice, got %v", result["notice"])
		}
	})

	t.Run("no_filter", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/records/filter", "", "")
		result := parseJSON(t, rec)
		if notice := result["notice"].(map[string]interface{}); notice["code"] != "NO_FILTER_APPLIED" {
			t.Errorf("expected NO_FILTER_APPLIED, got %v", notice)
		}
		if data := result["data"].([]interface{}); len(data) != 3 {
			t.Errorf("expected all 3 records, got %d", len(data))
		}
	})

	t.Run("no_match_falls_back", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/records/filter?name=zed", "", "")
		result := parseJSON(t, rec)
		if notice := result["notice"].(map[string]interface{}); notice["code"] != "NO_MATCH" {
			t.Errorf("expected NO_MATCH, got %v", notice)
		}
		if data := result["data"].([]interface{}); len(data) != 3 {
			t.Errorf("expected all 3 records, got %d", len(data))
		}
	})

	t.Run("suggestions", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/records/suggestions?prefix=a", "", "")
		names := parseJSON(t, rec)["suggestions"].([]interface{})
		if len(names) != 1 || names[0] != "Alice" {
			t.Errorf("expected [Alice], got %v", names)
		}

		rec = app.request(http.MethodGet, "/api/v1/records/suggestions", "", "")
		if names := parseJSON(t, rec)["suggestions"].([]interface{}); len(names) != 0 {
			t.Errorf("expected no suggestions for empty prefix, got %v", names)
		}
	})

	t.Run("export_honours_filter", func(t *testing.T) {
		rec := app.request(http.MethodGet, "/api/v1/records/export?name=bob", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
		}
		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		if err != nil {
			t.Fatalf("export is not a workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows("Records")
		if err != nil {
			t.Fatalf("missing Records sheet: %v", err)
		}
		if len(rows) != 2 || rows[1][0] != "IO2" {
			t.Errorf("expected header plus IO2, got %v", rows)
		}
	})
}

func TestInvoiceDownload(t *testing.T) {
	app := setupApp(t)
	app.createCustomer(t, "Acme Traders", 9, 9)
	record := app.createRecord(t, "Acme Traders", 10, 100, "2024-05-01")

	rec := app.request(http.MethodGet, fmt.Sprintf("/api/v1/records/%d/invoice", int(record["id"].(float64))), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("invoice download failed: %d %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected a PDF body")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "invoice_IO1.pdf") {
		t.Errorf("expected invoice_IO1.pdf, got %q", cd)
	}

	rec = app.request(http.MethodGet, "/api/v1/records/999/invoice", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing record, got %d", rec.Code)
	}
}

func TestMalformedInvoiceNumberBlocksSave(t *testing.T) {
	app := setupApp(t)
	app.createCustomer(t, "Acme Traders", 9, 9)

	legacy := &models.Record{Name: "Acme Traders", InvoiceNumber: "INV-7", Date: "2024-01-01"}
	if err := app.DB.Create(legacy).Error; err != nil {
		t.Fatalf("failed to seed legacy record: %v", err)
	}

	rec := app.request(http.MethodPost, "/api/v1/records",
		`{"customer_name":"Acme Traders","stocks":1,"market_value":1}`, testAPIKey)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "MALFORMED_INVOICE_NUMBER" {
		t.Errorf("expected MALFORMED_INVOICE_NUMBER, got %v", errObj["code"])
	}
}

func TestWriteEndpointsRequireAPIKey(t *testing.T) {
	app := setupApp(t)

	rec := app.request(http.MethodPost, "/api/v1/customers",
		`{"name":"X","address":"Y","business":"Z","gst_number":"G","sgst":1,"cgst":1}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without key, got %d", rec.Code)
	}

	rec = app.request(http.MethodPost, "/api/v1/records",
		`{"customer_name":"X","stocks":1,"market_value":1}`, "wrong")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong key, got %d", rec.Code)
	}

	rec = app.request(http.MethodGet, "/api/v1/customers", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected reads to stay open, got %d", rec.Code)
	}
}

func TestCustomerLifecycle(t *testing.T) {
	app := setupApp(t)
	id := app.createCustomer(t, "Acme Traders", 9, 9)

	rec := app.request(http.MethodPost, "/api/v1/customers",
		`{"name":"Acme Traders","address":"a","business":"b","gst_number":"g","sgst":1,"cgst":1}`, testAPIKey)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d", rec.Code)
	}

	path := fmt.Sprintf("/api/v1/customers/%d", int(id))
	rec = app.request(http.MethodDelete, path, "", testAPIKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}

	rec = app.request(http.MethodGet, path, "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}

	var audits int64
	app.DB.Model(&models.AuditLog{}).Where("resource_type = ?", "customer").Count(&audits)
	if audits != 2 {
		t.Errorf("expected create and delete audit entries, got %d", audits)
	}

	var missingRequestID int64
	app.DB.Model(&models.AuditLog{}).Where("request_id = ?", "").Count(&missingRequestID)
	if missingRequestID != 0 {
		t.Errorf("expected every audit entry to carry a request ID, %d did not", missingRequestID)
	}
}

func TestCreateRecordReturnsNextInvoiceNumber(t *testing.T) {
	app := setupApp(t)
	app.createCustomer(t, "Acme Traders", 9, 9)

	body := `{"customer_name":"Acme Traders","stocks":10,"market_value":100,"date":"2024-05-01"}`
	rec := app.request(http.MethodPost, "/api/v1/records", body, testAPIKey)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create record failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if got := result["record"].(map[string]interface{})["invoice_number"]; got != "IO1" {
		t.Errorf("expected IO1, got %v", got)
	}
	if result["next_invoice_number"] != "IO2" {
		t.Errorf("expected next_invoice_number IO2, got %v", result["next_invoice_number"])
	}

	rec = app.request(http.MethodGet, "/api/v1/records/next-invoice-number", "", "")
	if got := parseJSON(t, rec)["invoice_number"]; got != result["next_invoice_number"] {
		t.Errorf("next-invoice-number endpoint says %v, create response said %v", got, result["next_invoice_number"])
	}
}
