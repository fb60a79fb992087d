package hotelRepo

import (
	"context"

	"github.com/Present111/Hotel-Booking/models"
)

// HotelRepository is the slice of the hotel catalog the booking engine needs.
type HotelRepository interface {
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	// GetByIDs returns the hotels that exist among ids, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Hotel, error)
	// GetSummaries returns name/location projections keyed by id.
	GetSummaries(ctx context.Context, ids []string) (map[string]models.HotelSummary, error)
	// IncrementTotals atomically adds to totalBookings and totalRevenue.
	IncrementTotals(ctx context.Context, id string, bookings int, revenue float64) error
}
