package booking

import (
	"context"

	"github.com/Present111/Hotel-Booking/models"
)

func (s *DefaultBookingService) ListBookings(ctx context.Context, caller models.Caller) ([]models.BookingWithHotel, error) {
	if !caller.IsAdmin() {
		return nil, newForbidden("admin access required")
	}

	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, newStoreError("unable to fetch bookings", err)
	}

	hotels, err := s.Hotels.GetSummaries(ctx, uniqueIDs(bookings, func(b models.Booking) string { return b.HotelID }))
	if err != nil {
		return nil, newStoreError("unable to fetch hotels", err)
	}

	out := make([]models.BookingWithHotel, 0, len(bookings))
	for _, b := range bookings {
		item := models.BookingWithHotel{Booking: b}
		if h, ok := hotels[b.HotelID]; ok {
			h.ImageURLs = nil
			item.Hotel = &h
		}
		out = append(out, item)
	}
	return out, nil
}

// ListHotelBookings lists a hotel's bookings for its owner or an admin.
func (s *DefaultBookingService) ListHotelBookings(ctx context.Context, caller models.Caller, hotelID string) ([]models.BookingWithUser, error) {
	hotel, err := s.getHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !caller.CanManageHotel(hotel) {
		return nil, newForbidden("access denied")
	}

	bookings, err := s.Bookings.GetByHotel(ctx, hotelID)
	if err != nil {
		return nil, newStoreError("unable to fetch hotel bookings", err)
	}

	users, err := s.Users.GetSummaries(ctx, uniqueIDs(bookings, func(b models.Booking) string { return b.UserID }))
	if err != nil {
		return nil, newStoreError("unable to fetch users", err)
	}

	out := make([]models.BookingWithUser, 0, len(bookings))
	for _, b := range bookings {
		item := models.BookingWithUser{Booking: b}
		if u, ok := users[b.UserID]; ok {
			item.User = &u
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, caller models.Caller, id string) (*models.BookingWithHotel, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	hotels, err := s.Hotels.GetSummaries(ctx, []string{booking.HotelID})
	if err != nil {
		return nil, newStoreError("unable to fetch hotel", err)
	}

	out := &models.BookingWithHotel{Booking: *booking}
	if h, ok := hotels[booking.HotelID]; ok {
		out.Hotel = &h
	}
	return out, nil
}

// ListMyBookings returns one entry per caller booking, newest first, each as
// its hotel carrying that single booking. Bookings of removed hotels are skipped.
func (s *DefaultBookingService) ListMyBookings(ctx context.Context, caller models.Caller) ([]models.HotelWithBookings, error) {
	bookings, err := s.Bookings.GetByUser(ctx, caller.UserID)
	if err != nil {
		return nil, newStoreError("unable to fetch bookings", err)
	}

	hotels, err := s.Hotels.GetByIDs(ctx, uniqueIDs(bookings, func(b models.Booking) string { return b.HotelID }))
	if err != nil {
		return nil, newStoreError("unable to fetch hotels", err)
	}

	out := make([]models.HotelWithBookings, 0, len(bookings))
	for _, b := range bookings {
		h, ok := hotels[b.HotelID]
		if !ok {
			continue
		}
		out = append(out, models.HotelWithBookings{Hotel: h, Bookings: []models.Booking{b}})
	}
	return out, nil
}

func uniqueIDs(bookings []models.Booking, key func(models.Booking) string) []string {
	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		id := key(b)
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
