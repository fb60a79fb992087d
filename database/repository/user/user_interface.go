package userRepo

import (
	"context"

	"github.com/Present111/Hotel-Booking/models"
)

// UserRepository defines the user data access the booking engine needs.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetSummaries returns name/email projections keyed by id.
	GetSummaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error)
	// IncrementTotals atomically adds to totalBookings and totalSpent.
	IncrementTotals(ctx context.Context, id string, bookings int, spent float64) error
}
