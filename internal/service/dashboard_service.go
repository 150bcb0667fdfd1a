package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardStrongestLimit = 5
	dashboardRecentLimit    = 10
)

// DashboardService aggregates analytics for a profile's home screen. The
// individual sections are independent reads, so they are fetched
// concurrently.
type DashboardService struct {
	records     *RecordService
	workoutRepo domain.WorkoutRepository
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(records *RecordService, workoutRepo domain.WorkoutRepository) *DashboardService {
	return &DashboardService{
		records:     records,
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// GetSummary retrieves the aggregated dashboard for a profile.
func (s *DashboardService) GetSummary(ctx context.Context, profileID string) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		Strongest:      []domain.PersonalRecord{},
		Trends:         []domain.PerformanceComparison{},
		RecentWorkouts: []*domain.Workout{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Strongest lifts + their monthly trend
	g.Go(func() error {
		strongest, err := s.records.StrongestExercises(gCtx, profileID, dashboardStrongestLimit)
		if err != nil {
			return fmt.Errorf("failed to get strongest exercises: %w", err)
		}
		summary.Strongest = strongest

		for _, record := range strongest {
			cmp, err := s.records.ComparePerformance(gCtx, profileID, record.ExerciseID, domain.TimeframeMonth)
			if err != nil {
				return fmt.Errorf("failed to compare performance for %s: %w", record.ExerciseID, err)
			}
			summary.Trends = append(summary.Trends, *cmp)
		}
		return nil
	})

	// Recent workouts + trailing-week volume
	g.Go(func() error {
		workouts, err := s.workoutRepo.ListByProfile(gCtx, profileID, dashboardRecentLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		summary.RecentWorkouts = workouts
		summary.WeekVolume = weekVolume(workouts, s.now())
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// weekVolume sums completed-set volume over workouts finished in the
// trailing 7 days.
func weekVolume(workouts []*domain.Workout, now time.Time) domain.VolumeSummary {
	cutoff := now.AddDate(0, 0, -7)

	var vol domain.VolumeSummary
	for _, w := range workouts {
		if !w.Completed() || w.EndTime.Before(cutoff) {
			continue
		}
		vol.Workouts++
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed || set.Weight <= 0 || set.Reps <= 0 {
					continue
				}
				vol.TotalVolume += set.Weight * float64(set.Reps)
				vol.TotalSets++
				vol.TotalReps += set.Reps
			}
		}
	}
	return vol
}
