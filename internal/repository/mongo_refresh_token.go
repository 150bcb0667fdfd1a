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

// MongoRefreshTokenRepository implements domain.RefreshTokenRepository
type MongoRefreshTokenRepository struct {
	collection *mongo.Collection
}

// NewMongoRefreshTokenRepository creates a new refresh token repository
func NewMongoRefreshTokenRepository(db *mongo.Database) *MongoRefreshTokenRepository {
	coll := db.Collection("refresh_tokens")

	// Create indexes for efficient lookups
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token_hash", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "profile_id", Value: 1}},
		},
		{
			// TTL index: Mongo removes documents once expires_at passes
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	coll.Indexes().CreateMany(ctx, indexes)

	return &MongoRefreshTokenRepository{
		collection: coll,
	}
}

// Create stores a new refresh token
func (r *MongoRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	_, err := r.collection.InsertOne(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

// FindByHash retrieves a token by its hash. Returns (nil, nil) when no live
// token matches.
func (r *MongoRefreshTokenRepository) FindByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var token domain.RefreshToken
	err := r.collection.FindOne(ctx, bson.M{
		"token_hash": hash,
		"revoked":    false,
	}).Decode(&token)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}

	return &token, nil
}

// RevokeByHash revokes a specific token
func (r *MongoRefreshTokenRepository) RevokeByHash(ctx context.Context, hash string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"token_hash": hash},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllByProfileID revokes all refresh tokens for a profile
func (r *MongoRefreshTokenRepository) RevokeAllByProfileID(ctx context.Context, profileID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"profile_id": profileID, "revoked": false},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to revoke profile tokens: %w", err)
	}
	return nil
}

// DeleteExpired removes expired tokens, a safety net behind the TTL index
func (r *MongoRefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return nil
}
