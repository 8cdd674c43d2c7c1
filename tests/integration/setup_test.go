package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"billbook/internal/handlers"
	"billbook/internal/logger"
	"billbook/internal/middleware"
	"billbook/internal/services"
	"billbook/internal/testutil"
	"billbook/internal/validator"
)

// testAPIKey guards write endpoints in every integration app.
const testAPIKey = "integration-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp wires the real services and routes over a fresh in-memory database.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	// Services
	auditService := services.NewAuditService(db)
	customerService := services.NewCustomerService(db)
	recordService := services.NewRecordService(db, customerService)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerService, auditService)
	recordHandler := handlers.NewRecordHandler(recordService,
		services.NewInvoiceService("$"), services.NewExportService(), auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	handlers.RegisterRoutes(router.Group("/api/v1"), customerHandler, recordHandler, testAPIKey)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createCustomer registers a customer and returns its ID.
func (app *testApp) createCustomer(t *testing.T, name string, sgst, cgst float64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"address":"1 Mill Street","business":"Cotton","gst_number":"33AAACB0000A1Z5","sgst":%v,"cgst":%v}`,
		name, sgst, cgst)
	rec := app.request(http.MethodPost, "/api/v1/customers", body, testAPIKey)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer failed: %d %s", rec.Code, rec.Body.String())
	}
	customer := parseJSON(t, rec)["customer"].(map[string]interface{})
	return customer["id"].(float64)
}

// createRecord saves a sale and returns the stored record.
func (app *testApp) createRecord(t *testing.T, name string, stocks, marketValue float64, date string) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"customer_name":%q,"stocks":%v,"market_value":%v,"date":%q}`, name, stocks, marketValue, date)
	rec := app.request(http.MethodPost, "/api/v1/records", body, testAPIKey)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create record failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["record"].(map[string]interface{})
}
