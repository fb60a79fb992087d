package booking

import (
	"context"
	"errors"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"

	"go.uber.org/zap"
)

// DeleteBooking removes a booking and reverses exactly what its creation added
// to the hotel and user totals.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, caller models.Caller, id string) (*models.Booking, error) {
	deleted, err := s.Bookings.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("booking not found")
		}
		return nil, newStoreError("unable to delete booking", err)
	}

	// The delete has committed; the reversal must not be lost to a client disconnect.
	if err := s.Ledger.ApplyBookingDelta(context.WithoutCancel(ctx), deletionDelta(deleted)); err != nil {
		s.Logger.Error("Booking deleted but totals not reversed",
			zap.String("bookingId", id), zap.Error(err))
		return nil, newStoreError("booking deleted but totals could not be updated", err)
	}

	s.Logger.Info("Booking deleted",
		zap.String("bookingId", id),
		zap.String("hotelId", deleted.HotelID),
		zap.String("userId", deleted.UserID),
		zap.Float64("totalCost", deleted.TotalCost),
		zap.String("actorId", caller.UserID))
	return deleted, nil
}
