package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the notifier's custom rules.
// Field names in errors are the json names.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("telegram_chat_id", validateTelegramChatID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateTelegramChatID accepts the signed 64-bit ids Telegram uses for users,
// groups and channels. Empty values are left to required/omitempty.
func validateTelegramChatID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}
