package handlers

import (
	"finance-alerts/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on top of the validation package
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.NewValidator()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
