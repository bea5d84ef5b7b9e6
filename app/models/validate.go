package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Handles and slugs appear in URL paths and in composite store keys, so
// they are restricted to characters that need no escaping in either.
var urlsafeRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("urlsafe", func(fl validator.FieldLevel) bool {
		return urlsafeRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
