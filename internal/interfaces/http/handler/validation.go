package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	employeeapp "github.com/staffdir/backend/internal/application/employee"
)

// csvdate validates a YYYY-MM-DD date string, the same layout the CSV
// pipeline accepts
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("csvdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(employeeapp.DateLayout, fl.Field().String())
			return err == nil
		})
	}
}
