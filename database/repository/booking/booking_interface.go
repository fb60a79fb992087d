package bookingRepo

import (
	"context"

	"github.com/Present111/Hotel-Booking/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Mutation is a partial update of one booking. Set and Unset use stored field
// names; Event, when non-nil, is appended to the booking history.
type Mutation struct {
	Set   bson.M
	Unset []string
	Event *models.BookingEvent
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create assigns an id and inserts the booking. A second booking for the
	// same payment intent returns repository.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Booking, error)
	// GetAll, GetByHotel and GetByUser return bookings newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByHotel(ctx context.Context, hotelID string) ([]models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// Update applies m and returns the booking as stored afterwards.
	Update(ctx context.Context, id string, m Mutation) (*models.Booking, error)
	// Delete removes the booking and returns what was removed.
	Delete(ctx context.Context, id string) (*models.Booking, error)
}
