package booking

import (
	"errors"
	"fmt"

	"github.com/Present111/Hotel-Booking/utils"
)

// ErrorKind classifies engine failures for callers.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "not_found"
	KindValidation          ErrorKind = "validation"
	KindIntentMismatch      ErrorKind = "intent_mismatch"
	KindPaymentNotSucceeded ErrorKind = "payment_not_succeeded"
	KindGateway             ErrorKind = "gateway_error"
	KindStore               ErrorKind = "store_error"
	KindForbidden           ErrorKind = "forbidden"
	KindConflict            ErrorKind = "conflict"
)

// BookingError is returned by every DefaultBookingService operation.
// Message is safe to show to clients; Err carries the internal cause.
type BookingError struct {
	Kind    ErrorKind
	Message string
	Fields  []utils.FieldError
	// IntentStatus is set for KindPaymentNotSucceeded.
	IntentStatus string
	Err          error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a BookingError, or "" for any other error.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func newNotFound(msg string) error {
	return &BookingError{Kind: KindNotFound, Message: msg}
}

func newValidation(msg string, fields ...utils.FieldError) error {
	return &BookingError{Kind: KindValidation, Message: msg, Fields: fields}
}

func newIntentMismatch(msg string) error {
	return &BookingError{Kind: KindIntentMismatch, Message: msg}
}

func newPaymentNotSucceeded(status string) error {
	return &BookingError{
		Kind:         KindPaymentNotSucceeded,
		Message:      fmt.Sprintf("payment intent not succeeded. Status: %s", status),
		IntentStatus: status,
	}
}

func newGatewayError(msg string, err error) error {
	return &BookingError{Kind: KindGateway, Message: msg, Err: err}
}

func newStoreError(msg string, err error) error {
	return &BookingError{Kind: KindStore, Message: msg, Err: err}
}

func newForbidden(msg string) error {
	return &BookingError{Kind: KindForbidden, Message: msg}
}

func newConflict(msg string) error {
	return &BookingError{Kind: KindConflict, Message: msg}
}
