package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/Present111/Hotel-Booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCounterLedger(t *testing.T) {
	ctx := context.Background()
	seed := func() (*fakeHotels, *fakeUsers) {
		return newFakeHotels(models.Hotel{ID: "h", TotalBookings: 2, TotalRevenue: 500}),
			newFakeUsers(models.User{ID: "u", TotalBookings: 1, TotalSpent: 200})
	}
	delta := BookingDelta{BookingID: "b", HotelID: "h", UserID: "u", Count: 1, Amount: 300}

	t.Run("applies both sides", func(t *testing.T) {
		hotels, users := seed()
		l := NewCounterLedger(hotels, users, nil, zap.NewNop())

		require.NoError(t, l.ApplyBookingDelta(ctx, delta))
		hc, hr := hotels.totals("h")
		uc, us := users.totals("u")
		assert.Equal(t, 3, hc)
		assert.Equal(t, 800.0, hr)
		assert.Equal(t, 2, uc)
		assert.Equal(t, 500.0, us)
	})

	t.Run("one failing side does not block the other", func(t *testing.T) {
		hotels, users := seed()
		users.incErrs = []error{errors.New("timeout")}
		l := NewCounterLedger(hotels, users, nil, zap.NewNop())

		err := l.ApplyBookingDelta(ctx, delta)
		var le *LedgerError
		require.ErrorAs(t, err, &le)
		require.Len(t, le.Pending, 1)
		assert.Equal(t, models.LedgerTargetUser, le.Pending[0].Target)

		hc, _ := hotels.totals("h")
		assert.Equal(t, 3, hc)
	})

	t.Run("failed side goes to the retry queue", func(t *testing.T) {
		hotels, users := seed()
		hotels.incErrs = []error{errors.New("timeout")}
		queue := &fakeRetryQueue{}
		l := NewCounterLedger(hotels, users, queue, zap.NewNop())

		require.NoError(t, l.ApplyBookingDelta(ctx, delta))
		require.Len(t, queue.payloads, 1)
		assert.Equal(t, models.LedgerPayload{
			Target: models.LedgerTargetHotel, ID: "h", BookingID: "b", Count: 1, Amount: 300,
		}, queue.payloads[0])
	})

	t.Run("missing owner is dropped", func(t *testing.T) {
		hotels, users := seed()
		queue := &fakeRetryQueue{}
		l := NewCounterLedger(hotels, users, queue, zap.NewNop())

		d := delta
		d.HotelID = "gone"
		require.NoError(t, l.ApplyBookingDelta(ctx, d))
		assert.Empty(t, queue.payloads)
		uc, _ := users.totals("u")
		assert.Equal(t, 2, uc)
	})

	t.Run("unknown target", func(t *testing.T) {
		hotels, users := seed()
		l := NewCounterLedger(hotels, users, nil, nil)
		assert.Error(t, l.ApplyTarget(ctx, models.LedgerPayload{Target: "room", ID: "x"}))
	})
}

func TestDeltasAreInverse(t *testing.T) {
	b := &models.Booking{ID: "b", HotelID: "h", UserID: "u", TotalCost: 275.25}
	c, d := creationDelta(b), deletionDelta(b)
	assert.Equal(t, 0, c.Count+d.Count)
	assert.Equal(t, 0.0, c.Amount+d.Amount)
	assert.Equal(t, c.HotelID, d.HotelID)
	assert.Equal(t, c.UserID, d.UserID)
}
