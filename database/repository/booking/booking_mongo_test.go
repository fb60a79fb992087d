package bookingRepo

import (
	"context"
	"testing"
	"time"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func sampleBooking() models.Booking {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Booking{
		ID:              "b-1",
		HotelID:         "h-1",
		UserID:          "u-1",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		AdultCount:      2,
		CheckIn:         now.AddDate(0, 0, 7),
		CheckOut:        now.AddDate(0, 0, 10),
		TotalCost:       300,
		Status:          models.BookingStatusConfirmed,
		PaymentStatus:   models.PaymentStatusPaid,
		PaymentMethod:   models.PaymentMethodStripe,
		PaymentIntentID: "pi_123",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestMongoBookingRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := sampleBooking()
		b.ID = ""
		require.NoError(mt, repo.Create(ctx, &b))
		assert.NotEmpty(mt, b.ID)
	})

	mt.Run("create duplicate intent", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: bookings index: paymentIntentId_1",
		}))

		b := sampleBooking()
		err := repo.Create(ctx, &b)
		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		b := sampleBooking()
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, b)))

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(mt, err)
		assert.Equal(mt, b.ID, got.ID)
		assert.Equal(mt, models.BookingStatusConfirmed, got.Status)
		assert.Equal(mt, 300.0, got.TotalCost)
	})

	mt.Run("get by id missing", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByPaymentIntentID(ctx, "pi_missing")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("list by hotel", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		first := sampleBooking()
		second := sampleBooking()
		second.ID = "b-2"
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, first), toDoc(mt.T, second)))

		got, err := repo.GetByHotel(ctx, "h-1")
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "b-2", got[1].ID)
	})

	mt.Run("list empty is not nil", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.GetAll(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("update returns stored document", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		updated := sampleBooking()
		updated.Status = models.BookingStatusCancelled
		updated.CancellationReason = "guest request"
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: toDoc(mt.T, updated)}})

		got, err := repo.Update(ctx, updated.ID, Mutation{
			Set:   bson.M{"status": models.BookingStatusCancelled, "cancellationReason": "guest request"},
			Unset: []string{"refundAmount"},
			Event: &models.BookingEvent{Type: models.BookingEventStatus, From: "confirmed", To: "cancelled"},
		})
		require.NoError(mt, err)
		assert.Equal(mt, models.BookingStatusCancelled, got.Status)
		assert.Equal(mt, "guest request", got.CancellationReason)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.Update(ctx, "nope", Mutation{Set: bson.M{"status": "completed"}})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete returns removed document", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		b := sampleBooking()
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: toDoc(mt.T, b)}})

		got, err := repo.Delete(ctx, b.ID)
		require.NoError(mt, err)
		assert.Equal(mt, 300.0, got.TotalCost)
		assert.Equal(mt, "h-1", got.HotelID)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.Delete(ctx, "nope")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
