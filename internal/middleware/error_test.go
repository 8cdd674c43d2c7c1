package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "billbook/internal/errors"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app_error", apperrors.ErrRecordNotFound, http.StatusNotFound, "RECORD_NOT_FOUND"},
		{"wrapped_app_error", apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/fail", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
			if !ok {
				t.Fatal("expected error object in response")
			}
			if errObj["code"] != tt.wantCode {
				t.Errorf("error code = %v, want %s", errObj["code"], tt.wantCode)
			}
			if tt.name == "wrapped_app_error" && errObj["message"] == "disk full" {
				t.Error("internal error text leaked to the client")
			}
		})
	}
}
