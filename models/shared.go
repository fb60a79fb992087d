package models

// LedgerTarget names which aggregate a counter delta applies to.
type LedgerTarget string

const (
	LedgerTargetHotel LedgerTarget = "hotel"
	LedgerTargetUser  LedgerTarget = "user"
)

// LedgerPayload is the queued form of one side of a booking delta that
// could not be applied inline.
type LedgerPayload struct {
	Target    LedgerTarget `json:"target"`
	ID        string       `json:"id"`
	BookingID string       `json:"bookingId"`
	Count     int          `json:"count"`
	Amount    float64      `json:"amount"`
}
