package domain

import (
	"context"
	"time"
)

// PlanExercise is one slot in a training plan with its targets
type PlanExercise struct {
	ExerciseID string `json:"exercise_id" bson:"exercise_id"`
	TargetSets int    `json:"target_sets" bson:"target_sets"`
	TargetReps int    `json:"target_reps" bson:"target_reps"`
	RestSec    int    `json:"rest_seconds" bson:"rest_seconds"`
}

// TrainingPlan is an authored workout structure owned by a profile.
// Starting a workout from a plan materializes empty sets per exercise.
type TrainingPlan struct {
	ID        string         `json:"id" bson:"_id"`
	ProfileID string         `json:"profile_id" bson:"profile_id"`
	Name      string         `json:"name" bson:"name"`
	Notes     string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Exercises []PlanExercise `json:"exercises" bson:"exercises"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *TrainingPlan) error
	GetByID(ctx context.Context, profileID, id string) (*TrainingPlan, error)
	ListByProfile(ctx context.Context, profileID string) ([]*TrainingPlan, error)
	Update(ctx context.Context, plan *TrainingPlan) error
	Delete(ctx context.Context, profileID, id string) error
}
