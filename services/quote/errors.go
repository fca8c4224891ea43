package quote

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidTransition   = "invalidTransition"
	CodeDestinationMismatch = "destinationMismatch"
)

// QuoteError carries a stable code alongside the message.
type QuoteError struct {
	Code       string
	Message    string
	Mismatches []string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidTransitionError(msg string) error {
	return &QuoteError{Code: CodeInvalidTransition, Message: msg}
}

func NewDestinationMismatchError(mismatches []string) error {
	return &QuoteError{
		Code:       CodeDestinationMismatch,
		Message:    fmt.Sprintf("%d destination mismatch(es) detected; force-send to override", len(mismatches)),
		Mismatches: mismatches,
	}
}

// HasCode reports whether err is a QuoteError with the given code.
func HasCode(err error, code string) bool {
	var qe *QuoteError
	return errors.As(err, &qe) && qe.Code == code
}
