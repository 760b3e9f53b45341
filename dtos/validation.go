package dtos

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	UnitBarbershop = "barbershop"
	UnitBakery     = "bakery"
)

// RegisterValidations installs custom rules on gin's binding engine.
// Call once before the router starts serving.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("businessunit", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == UnitBarbershop || s == UnitBakery
		})
	}
}
