package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/redis/go-redis/v9"
)

const recordsKeyPrefix = "profile:records:"

// RedisCacheRepository caches derived per-profile values in Redis.
type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

func recordsKey(profileID string) string {
	return recordsKeyPrefix + profileID
}

// GetPersonalRecords returns the cached record map, or (nil, nil) on miss.
func (r *RedisCacheRepository) GetPersonalRecords(ctx context.Context, profileID string) (map[string]domain.PersonalRecord, error) {
	data, err := r.client.Get(ctx, recordsKey(profileID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached records: %w", err)
	}

	var records map[string]domain.PersonalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode cached records: %w", err)
	}
	return records, nil
}

func (r *RedisCacheRepository) SetPersonalRecords(ctx context.Context, profileID string, records map[string]domain.PersonalRecord, ttl time.Duration) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if err := r.client.Set(ctx, recordsKey(profileID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache records: %w", err)
	}
	return nil
}

// InvalidateProfile drops every cached derivation for a profile.
func (r *RedisCacheRepository) InvalidateProfile(ctx context.Context, profileID string) error {
	if err := r.client.Del(ctx, recordsKey(profileID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate profile cache: %w", err)
	}
	return nil
}
