package service

import (
	"context"
	"testing"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

func TestDashboardGetSummary(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	maxLogRepo := newFakeMaxLogRepo()
	maxLogRepo.Save(ctx, mustMaxLog("p1", "squat", 140, 1, now.AddDate(0, 0, -20)))
	maxLogRepo.Save(ctx, mustMaxLog("p1", "squat", 150, 1, now.AddDate(0, 0, -2)))
	maxLogRepo.Save(ctx, mustMaxLog("p1", "bench", 100, 1, now.AddDate(0, 0, -5)))

	workoutRepo := newFakeWorkoutRepo()
	recent := now.AddDate(0, 0, -2)
	workoutRepo.Create(ctx, &domain.Workout{
		ID: "w1", ProfileID: "p1",
		StartTime: recent.Add(-time.Hour), EndTime: &recent,
		Exercises: []domain.WorkoutExercise{{
			ExerciseID: "squat",
			Sets: []domain.WorkoutSet{
				{SetIndex: 1, Weight: 100, Reps: 5, Completed: true},
				{SetIndex: 2, Weight: 100, Reps: 4, Completed: false}, // skipped
			},
		}},
	})
	old := now.AddDate(0, 0, -20)
	workoutRepo.Create(ctx, &domain.Workout{
		ID: "w2", ProfileID: "p1",
		StartTime: old.Add(-time.Hour), EndTime: &old,
		Exercises: []domain.WorkoutExercise{{
			ExerciseID: "squat",
			Sets:       []domain.WorkoutSet{{SetIndex: 1, Weight: 90, Reps: 5, Completed: true}},
		}},
	})

	records := NewRecordService(maxLogRepo, nil)
	records.now = func() time.Time { return now }
	svc := NewDashboardService(records, workoutRepo)
	svc.now = func() time.Time { return now }

	summary, err := svc.GetSummary(ctx, "p1")
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if len(summary.Strongest) != 2 {
		t.Fatalf("got %d strongest entries, want 2", len(summary.Strongest))
	}
	if summary.Strongest[0].ExerciseID != "squat" {
		t.Errorf("strongest = %s, want squat", summary.Strongest[0].ExerciseID)
	}
	if len(summary.Trends) != 2 {
		t.Errorf("got %d trends, want 2", len(summary.Trends))
	}
	for _, trend := range summary.Trends {
		if trend.ExerciseID == "squat" && trend.Trend != domain.TrendImproving {
			t.Errorf("squat trend = %s, want %s", trend.Trend, domain.TrendImproving)
		}
	}

	if len(summary.RecentWorkouts) != 2 {
		t.Errorf("got %d recent workouts, want 2", len(summary.RecentWorkouts))
	}

	// Only w1 is inside the trailing week; only its completed set counts
	vol := summary.WeekVolume
	if vol.Workouts != 1 {
		t.Errorf("Workouts = %d, want 1", vol.Workouts)
	}
	if vol.TotalVolume != 500 {
		t.Errorf("TotalVolume = %.1f, want 500", vol.TotalVolume)
	}
	if vol.TotalSets != 1 || vol.TotalReps != 5 {
		t.Errorf("sets/reps = %d/%d, want 1/5", vol.TotalSets, vol.TotalReps)
	}
}
