package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"todocli/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// EmailValidator decides whether an address is acceptable for an employee.
type EmailValidator interface {
	IsValidEmail(email string) bool
}

// EmailValidatorFunc adapts a plain function to EmailValidator.
type EmailValidatorFunc func(email string) bool

func (f EmailValidatorFunc) IsValidEmail(email string) bool {
	return f(email)
}

type formatValidator struct{}

// NewEmailValidator returns the RFC 5322 address check used by the CLI.
func NewEmailValidator() EmailValidator {
	return formatValidator{}
}

func (formatValidator) IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// Struct checks the `validate` tags of an input struct and reports the first
// violation as a models.ErrValidation failure.
func Struct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return models.Validationf("input", "%v", err)
	}

	fe := fieldErrs[0]
	return models.Validationf(strings.ToLower(fe.Field()), "%s", describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
