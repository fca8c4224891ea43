package fulfillment

import (
	"errors"
	"fmt"

	"tripdesk/models"
)

// Pipeline step names, used in StepFailure and in batch error strings.
const (
	StepBooking    = "booking"
	StepInvoice    = "invoice"
	StepCommission = "commission"
)

// StepFailure reports which pipeline step failed and why. Writes made by
// earlier steps are not unwound; the error makes the partial state visible
// instead of hiding it.
type StepFailure struct {
	Step  string
	Cause error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Cause)
}

func (e *StepFailure) Unwrap() error {
	return e.Cause
}

// DuplicateInvoiceError is the non-fatal warning raised when a likely
// duplicate invoice is detected. Proceeding requires explicit operator
// confirmation (the Force option), never an automatic decision.
type DuplicateInvoiceError struct {
	Match models.DuplicateMatch
}

func (e *DuplicateInvoiceError) Error() string {
	return fmt.Sprintf("likely duplicate of invoice %s (%s); confirm to proceed", e.Match.InvoiceID, e.Match.Reason)
}

var (
	// ErrQuoteNotAccepted is returned when a quote outside the accepted
	// state is handed to the pipeline.
	ErrQuoteNotAccepted = errors.New("quote is not in accepted status")
	// ErrAlreadyFulfilled guards the once-per-quote idempotency target.
	ErrAlreadyFulfilled = errors.New("quote has already been fulfilled")
	// ErrFulfillmentInFlight is returned when another fulfillment run
	// currently holds the quote's lease.
	ErrFulfillmentInFlight = errors.New("a fulfillment for this quote is already in flight")
)

// AsStepFailure unwraps err into a StepFailure, if it is one.
func AsStepFailure(err error) (*StepFailure, bool) {
	var sf *StepFailure
	ok := errors.As(err, &sf)
	return sf, ok
}

// AsDuplicateWarning unwraps err into a DuplicateInvoiceError, if it is one.
func AsDuplicateWarning(err error) (*DuplicateInvoiceError, bool) {
	var de *DuplicateInvoiceError
	ok := errors.As(err, &de)
	return de, ok
}
