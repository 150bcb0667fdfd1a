package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

const recordsCacheTTL = 24 * time.Hour

// RecordService computes personal records and performance trends from the
// max-log history. All derivations are recomputed on demand; Redis only
// memoizes results between mutations.
type RecordService struct {
	maxLogRepo domain.MaxLogRepository
	cache      domain.CacheRepository
	now        func() time.Time
}

// NewRecordService creates a new record service
func NewRecordService(maxLogRepo domain.MaxLogRepository, cache domain.CacheRepository) *RecordService {
	return &RecordService{
		maxLogRepo: maxLogRepo,
		cache:      cache,
		now:        time.Now,
	}
}

// ComputeRecords derives the per-exercise personal records from a max-log
// collection. Input order is not assumed: each exercise group is sorted by
// date ascending, then evaluated chronologically keeping a running best. A
// later entry only replaces the best when its estimated 1RM is strictly
// greater; ties keep the earlier record, since it was achieved first.
func ComputeRecords(logs []domain.MaxLog) map[string]domain.PersonalRecord {
	byExercise := make(map[string][]domain.MaxLog)
	for _, l := range logs {
		byExercise[l.ExerciseID] = append(byExercise[l.ExerciseID], l)
	}

	records := make(map[string]domain.PersonalRecord, len(byExercise))
	for exerciseID, group := range byExercise {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		var best domain.PersonalRecord
		haveBest := false
		for _, l := range group {
			if haveBest && l.Estimated1RM <= best.Estimated1RM {
				continue
			}

			record := domain.PersonalRecord{
				ExerciseID:   exerciseID,
				Weight:       l.Weight,
				Reps:         l.Reps,
				Estimated1RM: l.Estimated1RM,
				Date:         l.Date,
			}
			if haveBest {
				// WeightIncrease can be zero or negative: the estimate can
				// improve through reps alone. That is expected, not a bug.
				record.Improvement = &domain.Improvement{
					PreviousWeight: best.Weight,
					PreviousDate:   best.Date,
					WeightIncrease: l.Weight - best.Weight,
					DaysBetween:    int(l.Date.Sub(best.Date).Hours() / 24),
				}
			}
			best = record
			haveBest = true
		}
		records[exerciseID] = best
	}
	return records
}

// PersonalRecords returns the per-exercise records for a profile, with Redis
// read-through/write-through caching. An empty history yields an empty map,
// never an error.
func (s *RecordService) PersonalRecords(ctx context.Context, profileID string) (map[string]domain.PersonalRecord, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPersonalRecords(ctx, profileID)
		if err != nil {
			// Cache errors must never block the request
			log.Printf("Warning: failed to read records cache: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	logs, err := s.maxLogRepo.FindAll(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch max logs: %w", err)
	}

	records := ComputeRecords(logs)

	if s.cache != nil {
		if err := s.cache.SetPersonalRecords(ctx, profileID, records, recordsCacheTTL); err != nil {
			log.Printf("Warning: failed to cache records: %v", err)
		}
	}
	return records, nil
}

// ComparePerformance classifies the trend of an exercise's estimated 1RM
// over a trailing window ending now. Fewer than 2 qualifying entries is a
// normal state and yields TrendInsufficientData.
func (s *RecordService) ComparePerformance(ctx context.Context, profileID, exerciseID string, timeframe domain.Timeframe) (*domain.PerformanceComparison, error) {
	if !timeframe.Valid() {
		return nil, domain.NewValidationError("timeframe", "must be week, month or quarter")
	}

	logs, err := s.maxLogRepo.FindByExercise(ctx, profileID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch max logs: %w", err)
	}

	now := s.now()
	start := windowStart(now, timeframe)

	var window []domain.MaxLog
	for _, l := range logs {
		if !l.Date.Before(start) && !l.Date.After(now) {
			window = append(window, l)
		}
	}
	sort.SliceStable(window, func(i, j int) bool {
		return window[i].Date.Before(window[j].Date)
	})

	cmp := &domain.PerformanceComparison{
		ExerciseID: exerciseID,
		Timeframe:  timeframe,
	}
	if len(window) < 2 {
		cmp.Trend = domain.TrendInsufficientData
		return cmp, nil
	}

	oldest := window[0].Estimated1RM
	recent := window[len(window)-1].Estimated1RM
	change := (recent - oldest) / oldest * 100

	cmp.Previous = oldest
	cmp.Recent = recent
	cmp.ChangePercent = change
	switch {
	case change > 5:
		cmp.Trend = domain.TrendImproving
	case change < -5:
		cmp.Trend = domain.TrendDeclining
	default:
		cmp.Trend = domain.TrendStable
	}
	return cmp, nil
}

// StrongestExercises returns the per-exercise best records sorted by
// estimated 1RM descending, truncated to limit.
func (s *RecordService) StrongestExercises(ctx context.Context, profileID string, limit int) ([]domain.PersonalRecord, error) {
	records, err := s.PersonalRecords(ctx, profileID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PersonalRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Estimated1RM != out[j].Estimated1RM {
			return out[i].Estimated1RM > out[j].Estimated1RM
		}
		return out[i].ExerciseID < out[j].ExerciseID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Invalidate drops cached derivations after a max-log mutation.
func (s *RecordService) Invalidate(ctx context.Context, profileID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProfile(ctx, profileID); err != nil {
		log.Printf("Warning: failed to invalidate records cache: %v", err)
	}
}

func windowStart(now time.Time, timeframe domain.Timeframe) time.Time {
	switch timeframe {
	case domain.TimeframeWeek:
		return now.AddDate(0, 0, -7)
	case domain.TimeframeMonth:
		return now.AddDate(0, -1, 0)
	default: // quarter
		return now.AddDate(0, -3, 0)
	}
}
