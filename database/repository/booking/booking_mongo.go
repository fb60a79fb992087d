package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Present111/Hotel-Booking/database/repository"
	"github.com/Present111/Hotel-Booking/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(CollectionName)}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("booking for payment intent %s: %w", booking.PaymentIntentID, repository.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoBookingRepo) GetByPaymentIntentID(ctx context.Context, intentID string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"paymentIntentId": intentID})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBookingRepo) GetByHotel(ctx context.Context, hotelID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"hotelId": hotelID})
}

func (r *MongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *MongoBookingRepo) Update(ctx context.Context, id string, m Mutation) (*models.Booking, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	update := bson.M{}
	if len(m.Set) > 0 {
		update["$set"] = m.Set
	}
	if len(m.Unset) > 0 {
		unset := bson.M{}
		for _, field := range m.Unset {
			unset[field] = ""
		}
		update["$unset"] = unset
	}
	if m.Event != nil {
		update["$push"] = bson.M{"history": m.Event}
	}
	if len(update) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DefaultTimeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	return &booking, nil
}
