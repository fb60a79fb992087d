package userRepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "users"

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection(CollectionName)}
}

// GetByID retrieves a user by its unique ID. Credentials are never loaded.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"password": 0, "passwordHash": 0})
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetSummaries(ctx context.Context, ids []string) (map[string]models.UserSummary, error) {
	out := make(map[string]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	projection := bson.M{"id": 1, "firstName": 1, "lastName": 1, "email": 1}
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.UserSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode user summaries: %w", err)
	}
	for _, s := range summaries {
		out[s.ID] = s
	}
	return out, nil
}

func (r *MongoUserRepo) IncrementTotals(ctx context.Context, id string, bookings int, spent float64) error {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	update := bson.M{"$inc": bson.M{"totalBookings": bookings, "totalSpent": spent}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment totals for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
