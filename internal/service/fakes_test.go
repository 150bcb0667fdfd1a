package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

// In-memory fakes shared by the service tests.

type fakeMaxLogRepo struct {
	logs map[string]domain.MaxLog
}

func newFakeMaxLogRepo() *fakeMaxLogRepo {
	return &fakeMaxLogRepo{logs: make(map[string]domain.MaxLog)}
}

func (r *fakeMaxLogRepo) Save(_ context.Context, maxLog domain.MaxLog) error {
	r.logs[maxLog.ID] = maxLog
	return nil
}

func (r *fakeMaxLogRepo) SaveAll(_ context.Context, logs []domain.MaxLog) error {
	for _, l := range logs {
		r.logs[l.ID] = l
	}
	return nil
}

func (r *fakeMaxLogRepo) FindByID(_ context.Context, profileID, id string) (domain.MaxLog, error) {
	l, ok := r.logs[id]
	if !ok || l.ProfileID != profileID {
		return domain.MaxLog{}, domain.ErrMaxLogNotFound
	}
	return l, nil
}

func (r *fakeMaxLogRepo) FindAll(_ context.Context, profileID string) ([]domain.MaxLog, error) {
	var out []domain.MaxLog
	for _, l := range r.logs {
		if l.ProfileID == profileID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeMaxLogRepo) FindByExercise(_ context.Context, profileID, exerciseID string) ([]domain.MaxLog, error) {
	var out []domain.MaxLog
	for _, l := range r.logs {
		if l.ProfileID == profileID && l.ExerciseID == exerciseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeMaxLogRepo) Delete(_ context.Context, profileID, id string) error {
	l, ok := r.logs[id]
	if ok && l.ProfileID == profileID {
		delete(r.logs, id)
	}
	return nil
}

type fakeExerciseRepo struct {
	exercises map[string]*domain.Exercise
}

func newFakeExerciseRepo(ids ...string) *fakeExerciseRepo {
	r := &fakeExerciseRepo{exercises: make(map[string]*domain.Exercise)}
	for _, id := range ids {
		r.exercises[id] = &domain.Exercise{ID: id, Name: "Exercise " + id}
	}
	return r
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = fmt.Sprintf("ex-%d", len(r.exercises)+1)
	}
	r.exercises[exercise.ID] = exercise
	return nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	ex, ok := r.exercises[id]
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	return ex, nil
}

func (r *fakeExerciseRepo) List(_ context.Context, _ map[string]interface{}) ([]*domain.Exercise, error) {
	var out []*domain.Exercise
	for _, ex := range r.exercises {
		out = append(out, ex)
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return domain.ErrExerciseNotFound
	}
	r.exercises[exercise.ID] = exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.exercises[id]; !ok {
		return domain.ErrExerciseNotFound
	}
	delete(r.exercises, id)
	return nil
}

type fakeWorkoutRepo struct {
	workouts map[string]*domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[string]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	cp := *workout
	r.workouts[workout.ID] = &cp
	return nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, profileID, id string) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok || w.ProfileID != profileID {
		return nil, domain.ErrWorkoutNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWorkoutRepo) ListByProfile(_ context.Context, profileID string, limit int) ([]*domain.Workout, error) {
	var out []*domain.Workout
	for _, w := range r.workouts {
		if w.ProfileID == profileID {
			cp := *w
			out = append(out, &cp)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return domain.ErrWorkoutNotFound
	}
	cp := *workout
	r.workouts[workout.ID] = &cp
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, profileID, id string) error {
	w, ok := r.workouts[id]
	if !ok || w.ProfileID != profileID {
		return domain.ErrWorkoutNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakePlanRepo struct {
	plans map[string]*domain.TrainingPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*domain.TrainingPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *domain.TrainingPlan) error {
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, profileID, id string) (*domain.TrainingPlan, error) {
	p, ok := r.plans[id]
	if !ok || p.ProfileID != profileID {
		return nil, domain.ErrPlanNotFound
	}
	return p, nil
}

func (r *fakePlanRepo) ListByProfile(_ context.Context, profileID string) ([]*domain.TrainingPlan, error) {
	var out []*domain.TrainingPlan
	for _, p := range r.plans {
		if p.ProfileID == profileID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *domain.TrainingPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrPlanNotFound
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, profileID, id string) error {
	p, ok := r.plans[id]
	if !ok || p.ProfileID != profileID {
		return domain.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

type fakeCache struct {
	records     map[string]map[string]domain.PersonalRecord
	sets        int
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{records: make(map[string]map[string]domain.PersonalRecord)}
}

func (c *fakeCache) GetPersonalRecords(_ context.Context, profileID string) (map[string]domain.PersonalRecord, error) {
	return c.records[profileID], nil
}

func (c *fakeCache) SetPersonalRecords(_ context.Context, profileID string, records map[string]domain.PersonalRecord, _ time.Duration) error {
	c.records[profileID] = records
	c.sets++
	return nil
}

func (c *fakeCache) InvalidateProfile(_ context.Context, profileID string) error {
	delete(c.records, profileID)
	c.invalidated++
	return nil
}

type fakeFileRepo struct {
	uploads []string
}

func (r *fakeFileRepo) Upload(_ context.Context, _ []byte, filename, _ string) (string, error) {
	r.uploads = append(r.uploads, filename)
	return "http://files.local/lifts/" + filename, nil
}

// mustMaxLog builds a valid max log or fails loudly in test setup.
func mustMaxLog(profileID, exerciseID string, weight float64, reps int, date time.Time) domain.MaxLog {
	l, err := domain.NewMaxLog(profileID, exerciseID, weight, reps, date, "")
	if err != nil {
		panic(err)
	}
	return l
}
