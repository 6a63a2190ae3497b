package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/muqry/hotel-reservation/internal/models"
)

// New returns a validator with the reservation rules registered.
func New() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterStructValidation(validateStay, models.ReservationRequest{})

	return validator
}

// validateStay rejects requests whose check-out is not after check-in.
func validateStay(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.ReservationRequest)
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return
	}
	if !req.CheckOut.After(req.CheckIn) {
		sl.ReportError(req.CheckOut, "CheckOut", "CheckOut", "after_checkin", "")
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "unique":
		return "must not contain duplicates"
	case "after_checkin":
		return "must be after the check-in date"
	default:
		return "is invalid"
	}
}
