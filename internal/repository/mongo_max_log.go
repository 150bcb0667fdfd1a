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

// MongoMaxLogRepository implements domain.MaxLogRepository over the
// max_logs collection. MaxLog ids are ULIDs assigned by the entity, so the
// _id is stored as a plain string.
type MongoMaxLogRepository struct {
	collection *mongo.Collection
}

func NewMongoMaxLogRepository(db *mongo.Database) *MongoMaxLogRepository {
	coll := db.Collection("max_logs")

	// Indexes for the profile- and exercise-scoped lookups
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "exercise_id", Value: 1}, {Key: "date", Value: 1}},
	})

	return &MongoMaxLogRepository{
		collection: coll,
	}
}

// Save upserts a max log document. The entity owns id assignment and
// derived-field computation; the repository only persists.
func (r *MongoMaxLogRepository) Save(ctx context.Context, maxLog domain.MaxLog) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": maxLog.ID, "profile_id": maxLog.ProfileID},
		maxLog,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save max log: %w", err)
	}
	return nil
}

// SaveAll persists a pre-validated batch in one insert.
func (r *MongoMaxLogRepository) SaveAll(ctx context.Context, logs []domain.MaxLog) error {
	if len(logs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(logs))
	for i, l := range logs {
		docs[i] = l
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to save max logs: %w", err)
	}
	return nil
}

func (r *MongoMaxLogRepository) FindByID(ctx context.Context, profileID, id string) (domain.MaxLog, error) {
	var maxLog domain.MaxLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "profile_id": profileID}).Decode(&maxLog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.MaxLog{}, domain.ErrMaxLogNotFound
		}
		return domain.MaxLog{}, err
	}
	return maxLog, nil
}

func (r *MongoMaxLogRepository) FindAll(ctx context.Context, profileID string) ([]domain.MaxLog, error) {
	return r.find(ctx, bson.M{"profile_id": profileID})
}

func (r *MongoMaxLogRepository) FindByExercise(ctx context.Context, profileID, exerciseID string) ([]domain.MaxLog, error) {
	return r.find(ctx, bson.M{"profile_id": profileID, "exercise_id": exerciseID})
}

func (r *MongoMaxLogRepository) find(ctx context.Context, filter bson.M) ([]domain.MaxLog, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.MaxLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Delete removes a max log. A missing id deletes zero documents, which is
// deliberately not an error.
func (r *MongoMaxLogRepository) Delete(ctx context.Context, profileID, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "profile_id": profileID})
	return err
}
