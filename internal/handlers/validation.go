package handlers

import (
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidations installs binding-level validations on gin's
// validator engine. "notreserved" rejects category values carrying the
// system-reserved prefix before the request reaches the service layer.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notreserved", func(fl validator.FieldLevel) bool {
		return !domain.IsReservedCategory(fl.Field().String())
	})
}
