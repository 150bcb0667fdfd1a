package domain

import (
	"context"
	"time"
)

// Weight units supported by profiles
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// Profile represents one training identity. The app is local-first, so a
// device typically holds a handful of profiles with no external account.
type Profile struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Birthday     string    `bson:"birthday,omitempty" json:"birthday,omitempty"` // YYYY-MM-DD, display only
	BodyweightKg float64   `bson:"bodyweight_kg,omitempty" json:"bodyweight_kg,omitempty"`
	Unit         string    `bson:"unit" json:"unit"` // "kg" or "lb", display preference
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ProfileRepository defines operations for managing profiles
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetAll(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id string) error
}
