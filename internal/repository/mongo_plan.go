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

type MongoTrainingPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoTrainingPlanRepository(db *mongo.Database) *MongoTrainingPlanRepository {
	coll := db.Collection("training_plans")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "profile_id", Value: 1}},
	})

	return &MongoTrainingPlanRepository{
		collection: coll,
	}
}

func (r *MongoTrainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) error {
	_, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create training plan: %w", err)
	}
	return nil
}

func (r *MongoTrainingPlanRepository) GetByID(ctx context.Context, profileID, id string) (*domain.TrainingPlan, error) {
	var plan domain.TrainingPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "profile_id": profileID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *MongoTrainingPlanRepository) ListByProfile(ctx context.Context, profileID string) ([]*domain.TrainingPlan, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"profile_id": profileID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*domain.TrainingPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *MongoTrainingPlanRepository) Update(ctx context.Context, plan *domain.TrainingPlan) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID, "profile_id": plan.ProfileID}, plan)
	if err != nil {
		return fmt.Errorf("failed to update training plan: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (r *MongoTrainingPlanRepository) Delete(ctx context.Context, profileID, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "profile_id": profileID})
	if err != nil {
		return fmt.Errorf("failed to delete training plan: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
