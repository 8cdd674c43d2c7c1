package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"billbook/internal/services"
	"billbook/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock audit service ---

type mockAuditService struct {
	entries []services.AuditEntry
}

func (m *mockAuditService) Log(entry services.AuditEntry) {
	m.entries = append(m.entries, entry)
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
