package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

var recordsBase = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func TestComputeRecordsRunningBest(t *testing.T) {
	logs := []domain.MaxLog{
		mustMaxLog("p1", "squat", 110, 5, recordsBase.AddDate(0, 0, 9)),
		mustMaxLog("p1", "squat", 100, 5, recordsBase),
		mustMaxLog("p1", "squat", 105, 5, recordsBase.AddDate(0, 0, 20)), // weaker, ignored
	}

	records := ComputeRecords(logs)
	rec, ok := records["squat"]
	if !ok {
		t.Fatal("expected a squat record")
	}

	if rec.Weight != 110 || rec.Reps != 5 {
		t.Errorf("best = %.1fx%d, want 110x5", rec.Weight, rec.Reps)
	}
	if rec.Improvement == nil {
		t.Fatal("expected improvement data against the earlier best")
	}
	if rec.Improvement.PreviousWeight != 100 {
		t.Errorf("PreviousWeight = %.1f, want 100", rec.Improvement.PreviousWeight)
	}
	if rec.Improvement.WeightIncrease != 10 {
		t.Errorf("WeightIncrease = %.1f, want 10", rec.Improvement.WeightIncrease)
	}
	if rec.Improvement.DaysBetween != 9 {
		t.Errorf("DaysBetween = %d, want 9", rec.Improvement.DaysBetween)
	}
}

func TestComputeRecordsTieKeepsEarlier(t *testing.T) {
	first := mustMaxLog("p1", "bench", 100, 5, recordsBase)
	second := mustMaxLog("p1", "bench", 100, 5, recordsBase.AddDate(0, 0, 5))

	records := ComputeRecords([]domain.MaxLog{second, first})
	rec := records["bench"]

	if !rec.Date.Equal(first.Date) {
		t.Errorf("record date = %v, want the earlier %v", rec.Date, first.Date)
	}
	if rec.Improvement != nil {
		t.Error("a tie is not an improvement")
	}
}

func TestComputeRecordsFirstEntryHasNoImprovement(t *testing.T) {
	records := ComputeRecords([]domain.MaxLog{
		mustMaxLog("p1", "deadlift", 140, 3, recordsBase),
	})
	rec := records["deadlift"]
	if rec.Improvement != nil {
		t.Error("single entry should have no improvement")
	}
}

func TestComputeRecordsEmptyHistory(t *testing.T) {
	records := ComputeRecords(nil)
	if len(records) != 0 {
		t.Errorf("expected empty map, got %d entries", len(records))
	}
}

func TestPersonalRecordsUsesCache(t *testing.T) {
	repo := newFakeMaxLogRepo()
	cache := newFakeCache()
	svc := NewRecordService(repo, cache)
	ctx := context.Background()

	l := mustMaxLog("p1", "squat", 100, 5, recordsBase)
	repo.Save(ctx, l)

	records, err := svc.PersonalRecords(ctx, "p1")
	if err != nil {
		t.Fatalf("PersonalRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}

	// A second read is served from cache: new repo writes are not seen
	// until invalidation.
	repo.Save(ctx, mustMaxLog("p1", "bench", 80, 8, recordsBase))
	records, err = svc.PersonalRecords(ctx, "p1")
	if err != nil {
		t.Fatalf("PersonalRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("cached read returned %d records, want 1", len(records))
	}

	svc.Invalidate(ctx, "p1")
	records, _ = svc.PersonalRecords(ctx, "p1")
	if len(records) != 2 {
		t.Errorf("after invalidation got %d records, want 2", len(records))
	}
}

func TestComparePerformance(t *testing.T) {
	now := recordsBase.AddDate(0, 0, 30)

	tests := []struct {
		name       string
		logs       []domain.MaxLog
		timeframe  domain.Timeframe
		wantTrend  domain.Trend
		wantChange float64
	}{
		{
			name: "improving beyond 5 percent",
			logs: []domain.MaxLog{
				mustMaxLog("p1", "squat", 100, 1, now.AddDate(0, 0, -20)),
				mustMaxLog("p1", "squat", 110, 1, now.AddDate(0, 0, -1)),
			},
			timeframe:  domain.TimeframeMonth,
			wantTrend:  domain.TrendImproving,
			wantChange: 10,
		},
		{
			name: "declining beyond 5 percent",
			logs: []domain.MaxLog{
				mustMaxLog("p1", "squat", 100, 1, now.AddDate(0, 0, -20)),
				mustMaxLog("p1", "squat", 90, 1, now.AddDate(0, 0, -1)),
			},
			timeframe:  domain.TimeframeMonth,
			wantTrend:  domain.TrendDeclining,
			wantChange: -10,
		},
		{
			name: "stable within 5 percent",
			logs: []domain.MaxLog{
				mustMaxLog("p1", "squat", 100, 1, now.AddDate(0, 0, -20)),
				mustMaxLog("p1", "squat", 102, 1, now.AddDate(0, 0, -1)),
			},
			timeframe:  domain.TimeframeMonth,
			wantTrend:  domain.TrendStable,
			wantChange: 2,
		},
		{
			name: "single entry is insufficient",
			logs: []domain.MaxLog{
				mustMaxLog("p1", "squat", 100, 1, now.AddDate(0, 0, -1)),
			},
			timeframe: domain.TimeframeWeek,
			wantTrend: domain.TrendInsufficientData,
		},
		{
			name: "entries outside the window do not count",
			logs: []domain.MaxLog{
				mustMaxLog("p1", "squat", 100, 1, now.AddDate(0, 0, -20)), // outside week window
				mustMaxLog("p1", "squat", 110, 1, now.AddDate(0, 0, -1)),
			},
			timeframe: domain.TimeframeWeek,
			wantTrend: domain.TrendInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeMaxLogRepo()
			for _, l := range tt.logs {
				repo.Save(context.Background(), l)
			}
			svc := NewRecordService(repo, nil)
			svc.now = func() time.Time { return now }

			cmp, err := svc.ComparePerformance(context.Background(), "p1", "squat", tt.timeframe)
			if err != nil {
				t.Fatalf("ComparePerformance() error = %v", err)
			}
			if cmp.Trend != tt.wantTrend {
				t.Errorf("Trend = %s, want %s", cmp.Trend, tt.wantTrend)
			}
			if tt.wantTrend != domain.TrendInsufficientData && math.Abs(cmp.ChangePercent-tt.wantChange) > 0.001 {
				t.Errorf("ChangePercent = %.2f, want %.2f", cmp.ChangePercent, tt.wantChange)
			}
		})
	}
}

func TestComparePerformanceRejectsUnknownTimeframe(t *testing.T) {
	svc := NewRecordService(newFakeMaxLogRepo(), nil)
	_, err := svc.ComparePerformance(context.Background(), "p1", "squat", domain.Timeframe("year"))
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStrongestExercises(t *testing.T) {
	repo := newFakeMaxLogRepo()
	ctx := context.Background()
	repo.Save(ctx, mustMaxLog("p1", "deadlift", 160, 1, recordsBase))
	repo.Save(ctx, mustMaxLog("p1", "squat", 140, 1, recordsBase))
	repo.Save(ctx, mustMaxLog("p1", "bench", 100, 1, recordsBase))

	svc := NewRecordService(repo, nil)

	strongest, err := svc.StrongestExercises(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("StrongestExercises() error = %v", err)
	}
	if len(strongest) != 2 {
		t.Fatalf("got %d entries, want 2", len(strongest))
	}
	if strongest[0].ExerciseID != "deadlift" || strongest[1].ExerciseID != "squat" {
		t.Errorf("order = [%s %s], want [deadlift squat]", strongest[0].ExerciseID, strongest[1].ExerciseID)
	}
}
