package domain

import (
	"context"
	"time"
)

// RefreshToken represents a stored refresh token for device session management
type RefreshToken struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	ProfileID string    `bson:"profile_id" json:"profile_id"`
	TokenHash string    `bson:"token_hash" json:"-"` // SHA256 hash, never expose
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Device    string    `bson:"device" json:"device"` // device name for listing sessions
	Revoked   bool      `bson:"revoked" json:"revoked"`
}

// IsExpired checks if the refresh token has expired
func (r *RefreshToken) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// IsValid checks if the token is valid (not expired and not revoked)
func (r *RefreshToken) IsValid() bool {
	return !r.IsExpired() && !r.Revoked
}

// RefreshTokenRepository defines the interface for refresh token storage
type RefreshTokenRepository interface {
	// Create stores a new refresh token
	Create(ctx context.Context, token *RefreshToken) error

	// FindByHash retrieves a token by its hash
	FindByHash(ctx context.Context, hash string) (*RefreshToken, error)

	// RevokeByHash revokes a specific token
	RevokeByHash(ctx context.Context, hash string) error

	// RevokeAllByProfileID revokes all refresh tokens for a profile (force logout)
	RevokeAllByProfileID(ctx context.Context, profileID string) error

	// DeleteExpired removes expired tokens (cleanup job)
	DeleteExpired(ctx context.Context) error
}
