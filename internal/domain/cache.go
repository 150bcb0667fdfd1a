package domain

import (
	"context"
	"time"
)

// CacheRepository abstracts the Redis layer used to cache derived values.
// A cache miss is (nil, nil), never an error; cache failures are logged and
// never block a request.
type CacheRepository interface {
	// GetPersonalRecords retrieves cached per-exercise records for a profile
	GetPersonalRecords(ctx context.Context, profileID string) (map[string]PersonalRecord, error)
	// SetPersonalRecords caches per-exercise records with TTL
	SetPersonalRecords(ctx context.Context, profileID string, records map[string]PersonalRecord, ttl time.Duration) error
	// InvalidateProfile drops every cached derivation for a profile; called
	// after any max-log mutation so readers never see stale records
	InvalidateProfile(ctx context.Context, profileID string) error
}
