package models

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus is the lifecycle stage of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// BookingStatuses lists every accepted booking status.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
	BookingStatusRefunded,
}

// Valid reports whether s is one of the enumerated statuses.
func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts raw input into a BookingStatus.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("invalid booking status %q", raw)
	}
	return s, nil
}

// PaymentStatus is the settlement state of a booking's payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentStatuses lists every accepted payment status.
var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// Valid reports whether s is one of the enumerated payment statuses.
func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParsePaymentStatus converts raw input into a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("invalid payment status %q", raw)
	}
	return s, nil
}

// Payment methods recorded on bookings created by the engine itself.
const (
	PaymentMethodStripe = "stripe"
	PaymentMethodManual = "manual"
)

// Booking is one reservation of one hotel by one user for a date range.
type Booking struct {
	ID                 string         `bson:"id" json:"id"`
	HotelID            string         `bson:"hotelId" json:"hotelId"`
	UserID             string         `bson:"userId" json:"userId"`
	FirstName          string         `bson:"firstName" json:"firstName"`
	LastName           string         `bson:"lastName" json:"lastName"`
	Email              string         `bson:"email" json:"email"`
	Phone              string         `bson:"phone,omitempty" json:"phone,omitempty"`
	AdultCount         int            `bson:"adultCount" json:"adultCount"`
	ChildCount         int            `bson:"childCount" json:"childCount"`
	CheckIn            time.Time      `bson:"checkIn" json:"checkIn"`
	CheckOut           time.Time      `bson:"checkOut" json:"checkOut"`
	TotalCost          float64        `bson:"totalCost" json:"totalCost"`
	Status             BookingStatus  `bson:"status" json:"status"`
	PaymentStatus      PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod      string         `bson:"paymentMethod" json:"paymentMethod"`
	PaymentIntentID    string         `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	SpecialRequests    string         `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	CancellationReason string         `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	RefundAmount       *float64       `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	History            []BookingEvent `bson:"history,omitempty" json:"history,omitempty"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// BookingEventType names an audited transition.
type BookingEventType string

const (
	BookingEventStatus  BookingEventType = "status"
	BookingEventPayment BookingEventType = "payment"
)

// BookingEvent is one entry in a booking's audit trail.
type BookingEvent struct {
	Type    BookingEventType `bson:"type" json:"type"`
	From    string           `bson:"from" json:"from"`
	To      string           `bson:"to" json:"to"`
	ActorID string           `bson:"actorId" json:"actorId"`
	Note    string           `bson:"note,omitempty" json:"note,omitempty"`
	At      time.Time        `bson:"at" json:"at"`
}
