package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Present111/Hotel-Booking/database/repository"
	hotelRepo "github.com/Present111/Hotel-Booking/database/repository/hotel"
	userRepo "github.com/Present111/Hotel-Booking/database/repository/user"
	"github.com/Present111/Hotel-Booking/models"

	"go.uber.org/zap"
)

// BookingDelta is the change one booking makes to its hotel's and user's totals.
type BookingDelta struct {
	BookingID string
	HotelID   string
	UserID    string
	Count     int
	Amount    float64
}

func creationDelta(b *models.Booking) BookingDelta {
	return BookingDelta{BookingID: b.ID, HotelID: b.HotelID, UserID: b.UserID, Count: 1, Amount: b.TotalCost}
}

func deletionDelta(b *models.Booking) BookingDelta {
	return BookingDelta{BookingID: b.ID, HotelID: b.HotelID, UserID: b.UserID, Count: -1, Amount: -b.TotalCost}
}

// Ledger keeps hotel and user aggregates equal to the sum of live bookings.
type Ledger interface {
	ApplyBookingDelta(ctx context.Context, delta BookingDelta) error
}

// CounterRetryQueue accepts counter updates that failed inline.
type CounterRetryQueue interface {
	EnqueueLedgerRetry(ctx context.Context, payload models.LedgerPayload) error
}

// LedgerError lists the sides of a delta that were neither applied nor queued.
type LedgerError struct {
	Pending []models.LedgerPayload
	Err     error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%d counter update(s) not applied: %v", len(e.Pending), e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// CounterLedger applies deltas with atomic increments. A side that fails is
// handed to Retry; only a side that can be neither applied nor queued is an error.
type CounterLedger struct {
	Hotels hotelRepo.HotelRepository
	Users  userRepo.UserRepository
	Retry  CounterRetryQueue
	Logger *zap.Logger
}

func NewCounterLedger(hotels hotelRepo.HotelRepository, users userRepo.UserRepository, retry CounterRetryQueue, logger *zap.Logger) *CounterLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CounterLedger{Hotels: hotels, Users: users, Retry: retry, Logger: logger}
}

func (d BookingDelta) payloads() []models.LedgerPayload {
	return []models.LedgerPayload{
		{Target: models.LedgerTargetHotel, ID: d.HotelID, BookingID: d.BookingID, Count: d.Count, Amount: d.Amount},
		{Target: models.LedgerTargetUser, ID: d.UserID, BookingID: d.BookingID, Count: d.Count, Amount: d.Amount},
	}
}

func (l *CounterLedger) ApplyBookingDelta(ctx context.Context, delta BookingDelta) error {
	var pending []models.LedgerPayload
	var errs []error

	for _, p := range delta.payloads() {
		err := l.ApplyTarget(ctx, p)
		if err == nil {
			continue
		}
		if errors.Is(err, repository.ErrNotFound) {
			// Nothing to keep in sync once the aggregate owner is gone.
			l.Logger.Warn("Counter owner missing, delta dropped",
				zap.String("target", string(p.Target)), zap.String("id", p.ID), zap.String("bookingId", p.BookingID))
			continue
		}
		l.Logger.Error("Counter update failed",
			zap.String("target", string(p.Target)), zap.String("id", p.ID),
			zap.String("bookingId", p.BookingID), zap.Error(err))

		if l.Retry != nil {
			qerr := l.Retry.EnqueueLedgerRetry(ctx, p)
			if qerr == nil {
				l.Logger.Warn("Counter update deferred to retry queue",
					zap.String("target", string(p.Target)), zap.String("id", p.ID),
					zap.Int("count", p.Count), zap.Float64("amount", p.Amount))
				continue
			}
			err = errors.Join(err, fmt.Errorf("enqueue retry: %w", qerr))
		}
		pending = append(pending, p)
		errs = append(errs, err)
	}

	if len(pending) == 0 {
		return nil
	}
	return &LedgerError{Pending: pending, Err: errors.Join(errs...)}
}

// ApplyTarget applies one side of a delta.
func (l *CounterLedger) ApplyTarget(ctx context.Context, p models.LedgerPayload) error {
	switch p.Target {
	case models.LedgerTargetHotel:
		return l.Hotels.IncrementTotals(ctx, p.ID, p.Count, p.Amount)
	case models.LedgerTargetUser:
		return l.Users.IncrementTotals(ctx, p.ID, p.Count, p.Amount)
	default:
		return fmt.Errorf("unknown ledger target %q", p.Target)
	}
}
