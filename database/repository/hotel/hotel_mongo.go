package hotelRepo

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

const CollectionName = "hotels"

var summaryProjection = bson.M{"id": 1, "name": 1, "city": 1, "country": 1, "imageUrls": 1}

// MongoHotelRepo implements HotelRepository using MongoDB.
type MongoHotelRepo struct {
	coll *mongo.Collection
}

func NewMongoHotelRepo(db *mongo.Database) *MongoHotelRepo {
	return &MongoHotelRepo{coll: db.Collection(CollectionName)}
}

func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hotel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

func (r *MongoHotelRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Hotel, error) {
	out := make(map[string]models.Hotel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	for _, h := range hotels {
		out[h.ID] = h
	}
	return out, nil
}

func (r *MongoHotelRepo) GetSummaries(ctx context.Context, ids []string) (map[string]models.HotelSummary, error) {
	out := make(map[string]models.HotelSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(summaryProjection)
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hotel summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.HotelSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode hotel summaries: %w", err)
	}
	for _, s := range summaries {
		out[s.ID] = s
	}
	return out, nil
}

func (r *MongoHotelRepo) IncrementTotals(ctx context.Context, id string, bookings int, revenue float64) error {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	update := bson.M{"$inc": bson.M{"totalBookings": bookings, "totalRevenue": revenue}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment totals for hotel %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("hotel %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
