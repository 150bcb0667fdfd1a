package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/oklog/ulid/v2"
)

// WorkoutService drives the workout lifecycle: start (optionally from a
// training plan), log sets, and complete. Completion is the entry point of
// the PR pipeline: detector -> new max logs -> record recomputation.
type WorkoutService struct {
	workoutRepo  domain.WorkoutRepository
	planRepo     domain.TrainingPlanRepository
	exerciseRepo domain.ExerciseRepository
	maxLogRepo   domain.MaxLogRepository
	records      *RecordService
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(
	workoutRepo domain.WorkoutRepository,
	planRepo domain.TrainingPlanRepository,
	exerciseRepo domain.ExerciseRepository,
	maxLogRepo domain.MaxLogRepository,
	records *RecordService,
) *WorkoutService {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		planRepo:     planRepo,
		exerciseRepo: exerciseRepo,
		maxLogRepo:   maxLogRepo,
		records:      records,
	}
}

// generateULID creates a new ULID string
func generateULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// Start opens a new workout. When planID is set, the plan's exercises are
// materialized with empty sets at their target counts.
func (s *WorkoutService) Start(ctx context.Context, profileID, planID string) (*domain.Workout, error) {
	workout := &domain.Workout{
		ID:        generateULID(),
		ProfileID: profileID,
		StartTime: time.Now(),
	}

	if planID != "" {
		plan, err := s.planRepo.GetByID(ctx, profileID, planID)
		if err != nil {
			return nil, fmt.Errorf("invalid plan: %w", err)
		}
		workout.PlanID = plan.ID

		for _, pe := range plan.Exercises {
			ex, err := s.exerciseRepo.GetByID(ctx, pe.ExerciseID)
			if err != nil {
				continue // graceful skip of removed exercises
			}

			targetSets := pe.TargetSets
			if targetSets == 0 {
				targetSets = 3
			}
			sets := make([]domain.WorkoutSet, targetSets)
			for i := range sets {
				sets[i] = domain.WorkoutSet{SetIndex: i + 1}
			}

			workout.Exercises = append(workout.Exercises, domain.WorkoutExercise{
				ExerciseID: ex.ID,
				Name:       ex.Name,
				Sets:       sets,
				TargetSets: targetSets,
				TargetReps: pe.TargetReps,
				RestSec:    pe.RestSec,
			})
		}
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return workout, nil
}

// AddExercise appends an exercise to an in-progress workout.
func (s *WorkoutService) AddExercise(ctx context.Context, profileID, workoutID, exerciseID string, targetSets, targetReps, restSec int) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, profileID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Completed() {
		return nil, errors.New("workout is already completed")
	}

	ex, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("invalid exercise: %w", err)
	}

	if targetSets == 0 {
		targetSets = 3
	}
	if targetReps == 0 {
		targetReps = 10
	}
	if restSec == 0 {
		restSec = 60
	}

	sets := make([]domain.WorkoutSet, targetSets)
	for i := range sets {
		sets[i] = domain.WorkoutSet{SetIndex: i + 1}
	}

	workout.Exercises = append(workout.Exercises, domain.WorkoutExercise{
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Sets:       sets,
		TargetSets: targetSets,
		TargetReps: targetReps,
		RestSec:    restSec,
	})

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	return workout, nil
}

// LogSet records (or overwrites) one set for an exercise in the workout.
func (s *WorkoutService) LogSet(ctx context.Context, profileID, workoutID, exerciseID string, set domain.WorkoutSet) (*domain.Workout, error) {
	if set.SetIndex < 1 {
		return nil, domain.NewValidationError("set_index", "must be >= 1")
	}

	workout, err := s.workoutRepo.GetByID(ctx, profileID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Completed() {
		return nil, errors.New("workout is already completed")
	}

	for i := range workout.Exercises {
		ex := &workout.Exercises[i]
		if ex.ExerciseID != exerciseID {
			continue
		}
		placed := false
		for j := range ex.Sets {
			if ex.Sets[j].SetIndex == set.SetIndex {
				ex.Sets[j] = set
				placed = true
				break
			}
		}
		if !placed {
			ex.Sets = append(ex.Sets, set)
		}

		if err := s.workoutRepo.Update(ctx, workout); err != nil {
			return nil, fmt.Errorf("failed to update workout: %w", err)
		}
		return workout, nil
	}
	return nil, domain.ErrExerciseNotFound
}

// Complete finishes the workout, runs PR detection against the pre-workout
// max-log history, persists one new max log per alerted exercise and
// returns the alerts. Detection itself is pure; this method owns the
// side effects around it.
func (s *WorkoutService) Complete(ctx context.Context, profileID, workoutID string) ([]domain.PRAlert, error) {
	workout, err := s.workoutRepo.GetByID(ctx, profileID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Completed() {
		return nil, errors.New("workout already completed")
	}

	history, err := s.maxLogRepo.FindAll(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch max log history: %w", err)
	}

	now := time.Now()
	workout.EndTime = &now
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to complete workout: %w", err)
	}

	alerts := CheckForRecords(*workout, history)
	if len(alerts) == 0 {
		return alerts, nil
	}

	newLogs := make([]domain.MaxLog, 0, len(alerts))
	for _, alert := range alerts {
		maxLog, err := domain.NewMaxLog(profileID, alert.ExerciseID, alert.Weight, alert.Reps, now, "")
		if err != nil {
			// Alerts come from eligible sets, so this only fires on
			// rep counts beyond the estimation ceiling
			log.Printf("Warning: skipping max log for %s: %v", alert.ExerciseID, err)
			continue
		}
		newLogs = append(newLogs, maxLog)
	}
	if len(newLogs) > 0 {
		if err := s.maxLogRepo.SaveAll(ctx, newLogs); err != nil {
			return nil, fmt.Errorf("workout completed but failed to persist new records: %w", err)
		}
		s.records.Invalidate(ctx, profileID)
	}

	for _, alert := range alerts {
		log.Printf("New %s for profile %s, exercise %s: %.1f x %d",
			alert.Type, profileID, alert.ExerciseID, alert.Weight, alert.Reps)
	}
	return alerts, nil
}

// Get retrieves a workout by id.
func (s *WorkoutService) Get(ctx context.Context, profileID, id string) (*domain.Workout, error) {
	return s.workoutRepo.GetByID(ctx, profileID, id)
}

// List returns recent workouts for a profile.
func (s *WorkoutService) List(ctx context.Context, profileID string, limit int) ([]*domain.Workout, error) {
	return s.workoutRepo.ListByProfile(ctx, profileID, limit)
}
