package domain

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/mansoorceksport/ironlog/internal/strength"
	"github.com/oklog/ulid/v2"
)

// MaxLog records a single max-effort lift attempt for a profile/exercise
// pair, together with its derived 1RM estimates. Instances are immutable:
// updates go through CloneWithUpdate, which produces a new value with the
// derived fields recomputed.
type MaxLog struct {
	ID            string    `json:"id" bson:"_id"`
	ProfileID     string    `json:"profile_id" bson:"profile_id"`
	ExerciseID    string    `json:"exercise_id" bson:"exercise_id"`
	Weight        float64   `json:"weight" bson:"weight"`
	Reps          int       `json:"reps" bson:"reps"`
	Date          time.Time `json:"date" bson:"date"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`

	// Derived estimates, computed at construction/clone time and never
	// mutated independently of weight/reps.
	Estimated1RM float64 `json:"estimated_1rm" bson:"estimated_1rm"`
	MaxBrzycki   float64 `json:"max_brzycki" bson:"max_brzycki"`
	MaxEpley     float64 `json:"max_epley" bson:"max_epley"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// MaxLogUpdate carries the optional field overrides for CloneWithUpdate.
// Nil pointers keep the original value.
type MaxLogUpdate struct {
	Weight *float64   `json:"weight"`
	Reps   *int       `json:"reps"`
	Date   *time.Time `json:"date"`
	Notes  *string    `json:"notes"`
}

// NewMaxLog creates a validated MaxLog with a fresh ULID and all derived
// estimates computed. The date must not be in the future at creation time.
func NewMaxLog(profileID, exerciseID string, weight float64, reps int, date time.Time, notes string) (MaxLog, error) {
	now := time.Now()
	if profileID == "" {
		return MaxLog{}, NewValidationError("profile_id", "must not be empty")
	}
	if exerciseID == "" {
		return MaxLog{}, NewValidationError("exercise_id", "must not be empty")
	}
	if date.After(now) {
		return MaxLog{}, NewValidationError("date", "must not be in the future")
	}

	log := MaxLog{
		ID:         ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		ProfileID:  profileID,
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Date:       date,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := log.recompute(); err != nil {
		return MaxLog{}, err
	}
	return log, nil
}

// CloneWithUpdate returns a new MaxLog with the given overrides applied and
// UpdatedAt refreshed. Derived estimates are always recomputed from the
// resulting weight/reps, even when only notes changed; recomputation is
// deterministic, so an untouched weight/reps pair yields identical values.
func (m MaxLog) CloneWithUpdate(upd MaxLogUpdate) (MaxLog, error) {
	clone := m
	if upd.Weight != nil {
		clone.Weight = *upd.Weight
	}
	if upd.Reps != nil {
		clone.Reps = *upd.Reps
	}
	if upd.Date != nil {
		if upd.Date.After(time.Now()) {
			return MaxLog{}, NewValidationError("date", "must not be in the future")
		}
		clone.Date = *upd.Date
	}
	if upd.Notes != nil {
		clone.Notes = *upd.Notes
	}
	clone.UpdatedAt = time.Now()

	if err := clone.recompute(); err != nil {
		return MaxLog{}, err
	}
	return clone, nil
}

// IsDirectAttempt reports whether the lift was a true single, in which case
// every derived estimate equals the weight exactly.
func (m MaxLog) IsDirectAttempt() bool {
	return m.Reps == 1
}

// Volume is the load volume of the attempt (weight x reps).
func (m MaxLog) Volume() float64 {
	return m.Weight * float64(m.Reps)
}

// Equal is identity equality: two attempts with identical measurements are
// still distinct records.
func (m MaxLog) Equal(other MaxLog) bool {
	return m.ID == other.ID
}

// recompute refreshes all derived estimates from the current weight/reps.
func (m *MaxLog) recompute() error {
	estimates, err := strength.EstimateAll(m.Weight, m.Reps)
	if err != nil {
		return translateEstimateErr(err)
	}
	aggregate, err := strength.Estimate(m.Weight, m.Reps, strength.FormulaAverage)
	if err != nil {
		return translateEstimateErr(err)
	}
	m.MaxBrzycki = estimates[strength.FormulaBrzycki]
	m.MaxEpley = estimates[strength.FormulaEpley]
	m.Estimated1RM = aggregate
	return nil
}

func translateEstimateErr(err error) error {
	switch {
	case errors.Is(err, strength.ErrInvalidWeight):
		return NewValidationError("weight", "must be positive")
	case errors.Is(err, strength.ErrInvalidReps):
		return NewValidationError("reps", "must be a positive integer")
	case errors.Is(err, strength.ErrRepsOutOfRange):
		return NewValidationError("reps", "too high for strength estimation (max 36)")
	default:
		return err
	}
}

// MaxLogRepository is the persistence boundary for max logs. All lookups are
// scoped by profile; Delete of a missing id is a silent no-op.
type MaxLogRepository interface {
	Save(ctx context.Context, log MaxLog) error
	// SaveAll persists a validated batch. Callers are expected to have
	// validated every entry up front (all-or-nothing policy).
	SaveAll(ctx context.Context, logs []MaxLog) error
	FindByID(ctx context.Context, profileID, id string) (MaxLog, error)
	FindAll(ctx context.Context, profileID string) ([]MaxLog, error)
	FindByExercise(ctx context.Context, profileID, exerciseID string) ([]MaxLog, error)
	Delete(ctx context.Context, profileID, id string) error
}
