package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Present111/Hotel-Booking/database/repository"
	bookingRepo "github.com/Present111/Hotel-Booking/database/repository/booking"
	hotelRepo "github.com/Present111/Hotel-Booking/database/repository/hotel"
	userRepo "github.com/Present111/Hotel-Booking/database/repository/user"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/services/payment"

	"go.uber.org/zap"
)

// BookingService is the booking lifecycle and payment reconciliation engine.
// Every operation runs on behalf of a verified caller.
type BookingService interface {
	IssuePaymentIntent(ctx context.Context, caller models.Caller, hotelID string, numberOfNights int) (*models.PaymentIntentResponse, error)
	CreateBookingFromPayment(ctx context.Context, caller models.Caller, hotelID string, input models.CreateBookingInput) (*models.Booking, error)
	CreateManualBooking(ctx context.Context, caller models.Caller, input models.ManualBookingInput) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, caller models.Caller, id string, update models.StatusUpdate) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, caller models.Caller, id string, update models.PaymentUpdate) (*models.Booking, error)
	DeleteBooking(ctx context.Context, caller models.Caller, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, caller models.Caller) ([]models.BookingWithHotel, error)
	ListHotelBookings(ctx context.Context, caller models.Caller, hotelID string) ([]models.BookingWithUser, error)
	GetBooking(ctx context.Context, caller models.Caller, id string) (*models.BookingWithHotel, error)
	ListMyBookings(ctx context.Context, caller models.Caller) ([]models.HotelWithBookings, error)
}

// IntentLocker serialises reconciliation of one payment intent.
type IntentLocker interface {
	Acquire(ctx context.Context, intentID string) (release func(), ok bool, err error)
}

// Dependencies wires a DefaultBookingService.
type Dependencies struct {
	Bookings bookingRepo.BookingRepository
	Hotels   hotelRepo.HotelRepository
	Users    userRepo.UserRepository
	Gateway  payment.Gateway
	Ledger   Ledger
	// Locker is optional; without it the unique payment intent index is the only guard.
	Locker   IntentLocker
	Logger   *zap.Logger
	Currency string
	Now      func() time.Time
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Hotels   hotelRepo.HotelRepository
	Users    userRepo.UserRepository
	Gateway  payment.Gateway
	Ledger   Ledger
	Locker   IntentLocker
	Logger   *zap.Logger
	Currency string
	Now      func() time.Time
}

func NewBookingService(deps Dependencies) (*DefaultBookingService, error) {
	switch {
	case deps.Bookings == nil:
		return nil, errors.New("booking repository is required")
	case deps.Hotels == nil:
		return nil, errors.New("hotel repository is required")
	case deps.Users == nil:
		return nil, errors.New("user repository is required")
	case deps.Gateway == nil:
		return nil, errors.New("payment gateway is required")
	case deps.Ledger == nil:
		return nil, errors.New("ledger is required")
	}

	s := &DefaultBookingService{
		Bookings: deps.Bookings,
		Hotels:   deps.Hotels,
		Users:    deps.Users,
		Gateway:  deps.Gateway,
		Ledger:   deps.Ledger,
		Locker:   deps.Locker,
		Logger:   deps.Logger,
		Currency: strings.ToLower(strings.TrimSpace(deps.Currency)),
		Now:      deps.Now,
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	if s.Currency == "" {
		s.Currency = "gbp"
	}
	if s.Now == nil {
		s.Now = func() time.Time { return time.Now().UTC() }
	}
	return s, nil
}

func (s *DefaultBookingService) getHotel(ctx context.Context, id string) (*models.Hotel, error) {
	hotel, err := s.Hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("hotel not found")
		}
		return nil, newStoreError("unable to fetch hotel", err)
	}
	return hotel, nil
}

func (s *DefaultBookingService) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("user not found")
		}
		return nil, newStoreError("unable to fetch user", err)
	}
	return user, nil
}

func (s *DefaultBookingService) getBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFound("booking not found")
		}
		return nil, newStoreError("unable to fetch booking", err)
	}
	return booking, nil
}
