package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Date string `binding:"omitempty,iso_date"`
	Name string `binding:"not_blank"`
}

func init() {
	Register()
}

func TestCustomValidators(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{"valid", sample{Date: "2024-02-29", Name: "Acme"}, false},
		{"empty_date", sample{Name: "Acme"}, false},
		{"not_a_leap_day", sample{Date: "2023-02-29", Name: "Acme"}, true},
		{"wrong_date_layout", sample{Date: "29/02/2024", Name: "Acme"}, true},
		{"blank_name", sample{Name: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.input)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
