package domain

import (
	"context"
	"time"
)

// WorkoutSet is one logged set inside a workout
type WorkoutSet struct {
	SetIndex  int     `json:"set_index" bson:"set_index"` // 1-based index (1, 2, 3)
	Weight    float64 `json:"weight" bson:"weight"`
	Reps      int     `json:"reps" bson:"reps"`
	Remarks   string  `json:"remarks,omitempty" bson:"remarks,omitempty"`
	Completed bool    `json:"completed" bson:"completed"`
}

// WorkoutExercise groups the sets performed for one exercise
type WorkoutExercise struct {
	ExerciseID string       `json:"exercise_id" bson:"exercise_id"`
	Name       string       `json:"name" bson:"name"` // denormalized for easy display
	Sets       []WorkoutSet `json:"sets" bson:"sets"`
	TargetSets int          `json:"target_sets,omitempty" bson:"target_sets,omitempty"`
	TargetReps int          `json:"target_reps,omitempty" bson:"target_reps,omitempty"`
	RestSec    int          `json:"rest_seconds,omitempty" bson:"rest_seconds,omitempty"`
}

// Workout is one training session. EndTime is nil while the session is in
// progress; PR detection only ever looks at completed workouts.
type Workout struct {
	ID        string            `json:"id" bson:"_id"`
	ProfileID string            `json:"profile_id" bson:"profile_id"`
	PlanID    string            `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	StartTime time.Time         `json:"start_time" bson:"start_time"`
	EndTime   *time.Time        `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Exercises []WorkoutExercise `json:"exercises" bson:"exercises"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// Completed reports whether the workout has been finished.
func (w Workout) Completed() bool {
	return w.EndTime != nil
}

// WorkoutRepository handles CRUD operations for workouts, scoped by profile
type WorkoutRepository interface {
	Create(ctx context.Context, workout *Workout) error
	GetByID(ctx context.Context, profileID, id string) (*Workout, error)
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, profileID, id string) error
}
