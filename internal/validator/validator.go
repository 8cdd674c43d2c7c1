// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO calendar date format stored on records.
const DateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("not_blank", validateNotBlank)
	}
}

// validateISODate accepts a real calendar date in YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
