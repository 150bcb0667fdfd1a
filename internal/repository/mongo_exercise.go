package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoExerciseRepository struct {
	collection *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	coll := db.Collection("exercises")

	// Unique index on name, the library must not hold duplicates
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoExerciseRepository{
		collection: coll,
	}
}

// exerciseDoc mirrors domain.Exercise with an ObjectID primary key.
type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	MuscleGroup string             `bson:"muscle_group"`
	Equipment   string             `bson:"equipment"`
	VideoURL    string             `bson:"video_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toExerciseDomain(doc exerciseDoc) *domain.Exercise {
	return &domain.Exercise{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		MuscleGroup: doc.MuscleGroup,
		Equipment:   doc.Equipment,
		VideoURL:    doc.VideoURL,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func (r *MongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	now := time.Now()
	doc := exerciseDoc{
		ID:          primitive.NewObjectID(),
		Name:        exercise.Name,
		MuscleGroup: exercise.MuscleGroup,
		Equipment:   exercise.Equipment,
		VideoURL:    exercise.VideoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateExercise
		}
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	exercise.ID = doc.ID.Hex()
	exercise.CreatedAt = doc.CreatedAt
	exercise.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *MongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var doc exerciseDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return toExerciseDomain(doc), nil
}

// List returns exercises matching the filter. A "name" filter value becomes a
// case-insensitive prefix match; other keys are matched exactly.
func (r *MongoExerciseRepository) List(ctx context.Context, filter map[string]interface{}) ([]*domain.Exercise, error) {
	query := bson.M{}
	for k, v := range filter {
		if k == "name" {
			query[k] = primitive.Regex{Pattern: fmt.Sprintf("^%v", v), Options: "i"}
			continue
		}
		query[k] = v
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []exerciseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	exercises := make([]*domain.Exercise, 0, len(docs))
	for _, doc := range docs {
		exercises = append(exercises, toExerciseDomain(doc))
	}
	return exercises, nil
}

func (r *MongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	oid, err := primitive.ObjectIDFromHex(exercise.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	exercise.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":         exercise.Name,
		"muscle_group": exercise.MuscleGroup,
		"equipment":    exercise.Equipment,
		"video_url":    exercise.VideoURL,
		"updated_at":   exercise.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateExercise
		}
		return fmt.Errorf("failed to update exercise: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}

func (r *MongoExerciseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}
