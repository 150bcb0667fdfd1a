package repository

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{
		collection: db.Collection("profiles"),
	}
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *MongoProfileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*domain.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *MongoProfileRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
