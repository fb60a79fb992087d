package userRepo

import (
	"context"
	"testing"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "u-1"},
			{Key: "firstName", Value: "Grace"},
			{Key: "email", Value: "grace@example.com"},
			{Key: "role", Value: "admin"},
			{Key: "totalSpent", Value: 120.5},
		}))

		u, err := repo.GetByID(ctx, "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, models.RoleAdmin, u.Role)
		assert.Equal(mt, 120.5, u.TotalSpent)
	})

	mt.Run("get by id missing", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, "u-404")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("summaries", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "u-1"}, {Key: "firstName", Value: "Grace"}, {Key: "lastName", Value: "Hopper"}},
		))

		got, err := repo.GetSummaries(ctx, []string{"u-1"})
		require.NoError(mt, err)
		assert.Equal(mt, "Hopper", got["u-1"].LastName)
	})

	mt.Run("increment totals", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		require.NoError(mt, repo.IncrementTotals(ctx, "u-1", 1, 300))
	})

	mt.Run("increment store failure", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad update",
		}))

		err := repo.IncrementTotals(ctx, "u-1", 1, 300)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrNotFound)
	})
}
