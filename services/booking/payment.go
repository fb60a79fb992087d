package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IssuePaymentIntent prices a stay and opens a gateway intent bound to the hotel
// and caller. Nothing is stored locally.
func (s *DefaultBookingService) IssuePaymentIntent(ctx context.Context, caller models.Caller, hotelID string, numberOfNights int) (*models.PaymentIntentResponse, error) {
	if numberOfNights < 1 {
		return nil, newValidation("invalid payment intent request",
			fieldError("numberOfNights", "Number of nights must be at least 1"))
	}

	hotel, err := s.getHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	totalCost := hotel.PricePerNight * float64(numberOfNights)
	attempt := fmt.Sprintf("%d:%s", s.Now().UnixMilli(), uuid.New().String())

	intent, err := s.Gateway.CreateIntent(ctx, payment.CreateIntentParams{
		Amount:   payment.ToMinorUnits(totalCost),
		Currency: s.Currency,
		Metadata: map[string]string{
			payment.MetadataHotelID:        hotelID,
			payment.MetadataUserID:         caller.UserID,
			payment.MetadataBookingAttempt: attempt,
		},
		IdempotencyKey: attempt,
	})
	if err != nil {
		return nil, newGatewayError("error creating payment intent", err)
	}
	if intent.ClientSecret == "" {
		return nil, newGatewayError("error creating payment intent", errors.New("gateway returned no client secret"))
	}

	s.Logger.Info("Payment intent issued",
		zap.String("paymentIntentId", intent.ID),
		zap.String("hotelId", hotelID),
		zap.String("userId", caller.UserID),
		zap.Int64("amount", intent.Amount),
		zap.String("currency", s.Currency))

	return &models.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

// CreateBookingFromPayment records a booking only after the gateway confirms the
// referenced intent succeeded for this hotel, this caller and this amount.
// Replaying a reconciled intent returns the booking already recorded for it.
func (s *DefaultBookingService) CreateBookingFromPayment(ctx context.Context, caller models.Caller, hotelID string, input models.CreateBookingInput) (*models.Booking, error) {
	var errs fieldErrors
	st := validateStay(stayInput{
		FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Phone: input.Phone,
		AdultCount: input.AdultCount, ChildCount: input.ChildCount,
		CheckIn: input.CheckIn, CheckOut: input.CheckOut,
		TotalCost: input.TotalCost, SpecialRequests: input.SpecialRequests,
	}, &errs)
	intentID := strings.TrimSpace(input.PaymentIntentID)
	if intentID == "" {
		errs.add("paymentIntentId", "Payment intent ID is required")
	}
	if len(errs) > 0 {
		return nil, newValidation(validationMessage(st), errs...)
	}

	intent, err := s.Gateway.GetIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, payment.ErrIntentNotFound) {
			return nil, newNotFound("payment intent not found")
		}
		return nil, newGatewayError("unable to verify payment intent", err)
	}

	if intent.Metadata[payment.MetadataHotelID] != hotelID || intent.Metadata[payment.MetadataUserID] != caller.UserID {
		s.Logger.Warn("Payment intent mismatch",
			zap.String("paymentIntentId", intentID),
			zap.String("hotelId", hotelID),
			zap.String("userId", caller.UserID))
		return nil, newIntentMismatch("payment intent mismatch")
	}
	if intent.Status != payment.IntentStatusSucceeded {
		return nil, newPaymentNotSucceeded(string(intent.Status))
	}
	if intent.Amount != payment.ToMinorUnits(st.TotalCost) {
		s.Logger.Warn("Payment amount mismatch",
			zap.String("paymentIntentId", intentID),
			zap.Int64("charged", intent.Amount),
			zap.Float64("claimedTotal", st.TotalCost))
		return nil, newIntentMismatch("payment amount does not match booking total")
	}

	release, err := s.lockIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.Bookings.GetByPaymentIntentID(ctx, intentID)
	switch {
	case err == nil:
		s.Logger.Info("Payment intent already reconciled",
			zap.String("paymentIntentId", intentID), zap.String("bookingId", existing.ID))
		return existing, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, newStoreError("unable to check existing bookings", err)
	}

	booking := st.booking(hotelID, caller.UserID, s.Now())
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentStatus = models.PaymentStatusPaid
	booking.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = models.PaymentMethodStripe
	}
	booking.PaymentIntentID = intentID

	return s.recordBooking(ctx, booking)
}

func (s *DefaultBookingService) lockIntent(ctx context.Context, intentID string) (func(), error) {
	if s.Locker == nil {
		return func() {}, nil
	}
	release, ok, err := s.Locker.Acquire(ctx, intentID)
	if err != nil {
		// The unique payment intent index still rejects a second insert.
		s.Logger.Warn("Intent lock unavailable, continuing without it",
			zap.String("paymentIntentId", intentID), zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, newConflict("payment intent is already being processed")
	}
	return release, nil
}

// recordBooking is the single creation path shared by reconciliation and
// manual bookings: persist, then apply the creation delta.
func (s *DefaultBookingService) recordBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) && booking.PaymentIntentID != "" {
			existing, ferr := s.Bookings.GetByPaymentIntentID(ctx, booking.PaymentIntentID)
			if ferr == nil {
				return existing, nil
			}
			return nil, newStoreError("unable to save booking", errors.Join(err, ferr))
		}
		return nil, newStoreError("unable to save booking", err)
	}

	// The insert has committed; the counters must follow even if the client is gone.
	if err := s.Ledger.ApplyBookingDelta(context.WithoutCancel(ctx), creationDelta(booking)); err != nil {
		s.Logger.Error("Booking saved but totals not updated",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return nil, newStoreError("booking saved but totals could not be updated", err)
	}

	s.Logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("hotelId", booking.HotelID),
		zap.String("userId", booking.UserID),
		zap.String("paymentMethod", booking.PaymentMethod),
		zap.Float64("totalCost", booking.TotalCost))
	return booking, nil
}
