package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
)

var validate = validator.New()

// validateStruct runs tag validation and maps the first failure to a
// field-specific validation error.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return apperr.Validation(fieldMessage(errs[0]))
	}
	return apperr.Validation("Validation error")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " entries"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
