package booking

import (
	"context"
	"strings"

	"github.com/Present111/Hotel-Booking/models"
)

// CreateManualBooking records a booking without gateway proof. Only admins may
// reach it; the route enforces that.
func (s *DefaultBookingService) CreateManualBooking(ctx context.Context, caller models.Caller, input models.ManualBookingInput) (*models.Booking, error) {
	var errs fieldErrors
	st := validateStay(stayInput{
		FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Phone: input.Phone,
		AdultCount: input.AdultCount, ChildCount: input.ChildCount,
		CheckIn: input.CheckIn, CheckOut: input.CheckOut,
		TotalCost: input.TotalCost, SpecialRequests: input.SpecialRequests,
	}, &errs)

	hotelID := strings.TrimSpace(input.HotelID)
	userID := strings.TrimSpace(input.UserID)
	if hotelID == "" {
		errs.add("hotelId", "Hotel ID is required")
	}
	if userID == "" {
		errs.add("userId", "User ID is required")
	}

	status := models.BookingStatusConfirmed
	if raw := strings.TrimSpace(input.Status); raw != "" {
		parsed, err := models.ParseBookingStatus(raw)
		if err != nil {
			errs.add("status", "Status must be one of %s", statusList())
		}
		status = parsed
	}
	paymentStatus := models.PaymentStatusPaid
	if raw := strings.TrimSpace(input.PaymentStatus); raw != "" {
		parsed, err := models.ParsePaymentStatus(raw)
		if err != nil {
			errs.add("paymentStatus", "Payment status must be one of %s", paymentStatusList())
		}
		paymentStatus = parsed
	}
	if len(errs) > 0 {
		return nil, newValidation(validationMessage(st), errs...)
	}

	if _, err := s.getHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	booking := st.booking(hotelID, userID, s.Now())
	booking.Status = status
	booking.PaymentStatus = paymentStatus
	booking.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = models.PaymentMethodManual
	}
	booking.History = []models.BookingEvent{{
		Type:    models.BookingEventStatus,
		To:      string(status),
		ActorID: caller.UserID,
		Note:    "manual booking",
		At:      booking.CreatedAt,
	}}

	return s.recordBooking(ctx, booking)
}
