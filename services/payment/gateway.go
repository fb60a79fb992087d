package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Metadata keys every intent issued for a booking carries.
const (
	MetadataHotelID        = "hotelId"
	MetadataUserID         = "userId"
	MetadataBookingAttempt = "bookingAttempt"
)

var (
	// ErrIntentNotFound is returned when the gateway has no intent with the given id.
	ErrIntentNotFound = errors.New("payment intent not found")
	// ErrMalformedIntent is returned when the gateway answers with an intent we cannot trust.
	ErrMalformedIntent = errors.New("malformed payment intent")
)

// IntentStatus is the gateway-reported state of an intent.
type IntentStatus string

const (
	IntentStatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentStatusRequiresConfirmation  IntentStatus = "requires_confirmation"
	IntentStatusRequiresAction        IntentStatus = "requires_action"
	IntentStatusProcessing            IntentStatus = "processing"
	IntentStatusRequiresCapture       IntentStatus = "requires_capture"
	IntentStatusCanceled              IntentStatus = "canceled"
	IntentStatusSucceeded             IntentStatus = "succeeded"
)

func (s IntentStatus) Valid() bool {
	switch s {
	case IntentStatusRequiresPaymentMethod, IntentStatusRequiresConfirmation, IntentStatusRequiresAction,
		IntentStatusProcessing, IntentStatusRequiresCapture, IntentStatusCanceled, IntentStatusSucceeded:
		return true
	}
	return false
}

// Intent is the narrow view of a gateway payment intent the engine relies on.
type Intent struct {
	ID           string
	Amount       int64
	Currency     string
	Status       IntentStatus
	ClientSecret string
	Metadata     map[string]string
}

// Validate rejects intents whose shape drifted from what the engine expects.
func (i *Intent) Validate() error {
	if i == nil {
		return fmt.Errorf("%w: empty response", ErrMalformedIntent)
	}
	if i.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedIntent)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrMalformedIntent, i.Status)
	}
	if i.Metadata == nil {
		return fmt.Errorf("%w: missing metadata", ErrMalformedIntent)
	}
	return nil
}

// CreateIntentParams describes an intent to issue.
type CreateIntentParams struct {
	Amount         int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

// Gateway is the payment provider as seen by the booking engine.
type Gateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
