package pricing

import (
	"errors"
	"fmt"
)

// Error codes for the pricing core.
const (
	CodeNoMatchingRate       = "noMatchingRate"
	CodeInvalidOccupancyRate = "invalidOccupancyRate"
	CodeInvalidDateRange     = "invalidDateRange"
)

// PricingError carries a stable code alongside the message so callers can
// branch without string matching.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNoMatchingRateError(msg string) error {
	return &PricingError{Code: CodeNoMatchingRate, Message: msg}
}

func NewInvalidOccupancyRateError(msg string) error {
	return &PricingError{Code: CodeInvalidOccupancyRate, Message: msg}
}

func NewInvalidDateRangeError(msg string) error {
	return &PricingError{Code: CodeInvalidDateRange, Message: msg}
}

// HasCode reports whether err is a PricingError with the given code.
func HasCode(err error, code string) bool {
	var pe *PricingError
	return errors.As(err, &pe) && pe.Code == code
}
