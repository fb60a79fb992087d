package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/Present111/Hotel-Booking/database/repository"
	bookingRepo "github.com/Present111/Hotel-Booking/database/repository/booking"
	"github.com/Present111/Hotel-Booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateBookingStatus moves a booking to a new lifecycle status. Totals are not
// touched: they follow existence and cost, not status.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, caller models.Caller, id string, update models.StatusUpdate) (*models.Booking, error) {
	status, err := models.ParseBookingStatus(update.Status)
	if err != nil {
		return nil, newValidation("invalid status",
			fieldError("status", "Status must be one of "+statusList()))
	}
	if update.RefundAmount != nil && *update.RefundAmount < 0 {
		return nil, newValidation("invalid refund amount",
			fieldError("refundAmount", "Refund amount must be 0 or more"))
	}

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	reason := strings.TrimSpace(update.CancellationReason)
	m := bookingRepo.Mutation{
		Set: bson.M{"status": status, "updatedAt": now},
		Event: &models.BookingEvent{
			Type:    models.BookingEventStatus,
			From:    string(current.Status),
			To:      string(status),
			ActorID: caller.UserID,
			At:      now,
		},
	}

	switch status {
	case models.BookingStatusCancelled:
		if reason != "" {
			m.Set["cancellationReason"] = reason
			m.Event.Note = reason
		}
		m.Unset = []string{"refundAmount"}
	case models.BookingStatusRefunded:
		amount := 0.0
		if update.RefundAmount != nil {
			amount = *update.RefundAmount
		}
		if amount > current.TotalCost {
			return nil, newValidation("invalid refund amount",
				fieldError("refundAmount", "Refund amount cannot exceed the booking total"))
		}
		m.Set["refundAmount"] = amount
		m.Unset = []string{"cancellationReason"}
	default:
		m.Unset = []string{"cancellationReason", "refundAmount"}
	}

	updated, err := s.Bookings.Update(ctx, id, m)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("booking not found")
		}
		return nil, newStoreError("unable to update booking", err)
	}

	s.Logger.Info("Booking status changed",
		zap.String("bookingId", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
		zap.String("actorId", caller.UserID))
	return updated, nil
}

// UpdatePaymentStatus records a new payment status and, optionally, method.
func (s *DefaultBookingService) UpdatePaymentStatus(ctx context.Context, caller models.Caller, id string, update models.PaymentUpdate) (*models.Booking, error) {
	paymentStatus, err := models.ParsePaymentStatus(update.PaymentStatus)
	if err != nil {
		return nil, newValidation("invalid payment status",
			fieldError("paymentStatus", "Payment status must be one of "+paymentStatusList()))
	}

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	m := bookingRepo.Mutation{
		Set: bson.M{"paymentStatus": paymentStatus, "updatedAt": now},
		Event: &models.BookingEvent{
			Type:    models.BookingEventPayment,
			From:    string(current.PaymentStatus),
			To:      string(paymentStatus),
			ActorID: caller.UserID,
			At:      now,
		},
	}
	if method := strings.TrimSpace(update.PaymentMethod); method != "" {
		m.Set["paymentMethod"] = method
		m.Event.Note = "method: " + method
	}

	updated, err := s.Bookings.Update(ctx, id, m)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("booking not found")
		}
		return nil, newStoreError("unable to update booking", err)
	}

	s.Logger.Info("Booking payment status changed",
		zap.String("bookingId", id),
		zap.String("from", string(current.PaymentStatus)),
		zap.String("to", string(paymentStatus)),
		zap.String("actorId", caller.UserID))
	return updated, nil
}
