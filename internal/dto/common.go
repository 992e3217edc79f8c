package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for all date fields (Y-m-d).
const DateLayout = "2006-01-02"

// RegisterDateValidation installs the datefmt binding rule, which enforces
// the Y-m-d wire format on string date fields.
func RegisterDateValidation(v *validator.Validate) error {
	return v.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse(DateLayout, value)
		return err == nil
	})
}

// ParseDate parses a Y-m-d wire date. Callers are expected to have
// validated the format already via the datefmt binding rule.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDatePtr parses an optional Y-m-d wire date.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DateRangeRequest defines the body of the amount-in-range operations.
type DateRangeRequest struct {
	StartDate string `json:"start_date" binding:"required,datefmt"`
	EndDate   string `json:"end_date" binding:"required,datefmt"`
}
