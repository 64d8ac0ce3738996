package dto

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CurrencyCodeTag is the validation tag for currency codes.
const CurrencyCodeTag = "currencycode"

// IsCurrencyCode reports whether s is three ASCII letters, any case.
func IsCurrencyCode(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return IsCurrencyCode(fl.Field().String())
}

// RegisterValidators installs the custom rules on v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation(CurrencyCodeTag, validateCurrencyCode); err != nil {
		return fmt.Errorf("failed to register %s validator: %w", CurrencyCodeTag, err)
	}
	return nil
}

// RegisterGinValidators installs the custom rules on gin's binding engine.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidators(v)
}
