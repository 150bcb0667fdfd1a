package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	coll := db.Collection("workouts")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "start_time", Value: -1}},
	})

	return &MongoWorkoutRepository{
		collection: coll,
	}
}

func (r *MongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	_, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

func (r *MongoWorkoutRepository) GetByID(ctx context.Context, profileID, id string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "profile_id": profileID}).Decode(&workout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListByProfile returns the most recent workouts first. limit <= 0 means no
// limit.
func (r *MongoWorkoutRepository) ListByProfile(ctx context.Context, profileID string, limit int) ([]*domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"profile_id": profileID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []*domain.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *MongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	workout.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": workout.ID, "profile_id": workout.ProfileID}, workout)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func (r *MongoWorkoutRepository) Delete(ctx context.Context, profileID, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "profile_id": profileID})
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}
