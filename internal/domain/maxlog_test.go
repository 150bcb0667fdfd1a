package domain

import (
	"math"
	"testing"
	"time"
)

func mustMaxLog(t *testing.T, weight float64, reps int) MaxLog {
	t.Helper()
	log, err := NewMaxLog("profile-1", "bench", weight, reps, time.Now().Add(-time.Hour), "")
	if err != nil {
		t.Fatalf("NewMaxLog(%v, %v) error = %v", weight, reps, err)
	}
	return log
}

func TestNewMaxLog_DirectAttempt(t *testing.T) {
	log := mustMaxLog(t, 120, 1)

	if !log.IsDirectAttempt() {
		t.Error("IsDirectAttempt() = false, want true for a single")
	}
	// A direct attempt is definitionally its own max, no formula applies
	if log.Estimated1RM != 120 || log.MaxBrzycki != 120 || log.MaxEpley != 120 {
		t.Errorf("direct attempt estimates = (%v, %v, %v), want all 120",
			log.Estimated1RM, log.MaxBrzycki, log.MaxEpley)
	}
}

func TestNewMaxLog_DerivedEstimates(t *testing.T) {
	log := mustMaxLog(t, 100, 5)

	if math.Abs(log.MaxBrzycki-112.5) > 0.01 {
		t.Errorf("MaxBrzycki = %v, want 112.5", log.MaxBrzycki)
	}
	if log.Estimated1RM <= 100 || log.Estimated1RM >= 130 {
		t.Errorf("Estimated1RM = %v, want strictly between 100 and 130", log.Estimated1RM)
	}
	if log.IsDirectAttempt() {
		t.Error("IsDirectAttempt() = true for a 5-rep set")
	}
	if log.ID == "" {
		t.Error("expected a fresh id at creation")
	}
}

func TestNewMaxLog_Validation(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	tests := []struct {
		name   string
		weight float64
		reps   int
		date   time.Time
	}{
		{"zero weight", 0, 5, past},
		{"negative weight", -80, 5, past},
		{"zero reps", 100, 0, past},
		{"negative reps", 100, -3, past},
		{"reps at brzycki singularity", 100, 37, past},
		{"future date", 100, 5, time.Now().Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaxLog("profile-1", "bench", tt.weight, tt.reps, tt.date, "")
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !IsValidation(err) {
				t.Errorf("error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestCloneWithUpdate_NotesOnlyKeepsDerivedValues(t *testing.T) {
	orig := mustMaxLog(t, 100, 5)

	notes := "belt, no sleeves"
	clone, err := orig.CloneWithUpdate(MaxLogUpdate{Notes: &notes})
	if err != nil {
		t.Fatalf("CloneWithUpdate error = %v", err)
	}

	// Derived values are recomputed, not copied, but the same weight/reps
	// must yield numerically identical results.
	if clone.Estimated1RM != orig.Estimated1RM ||
		clone.MaxBrzycki != orig.MaxBrzycki ||
		clone.MaxEpley != orig.MaxEpley {
		t.Errorf("derived values changed on notes-only update: got (%v, %v, %v), want (%v, %v, %v)",
			clone.Estimated1RM, clone.MaxBrzycki, clone.MaxEpley,
			orig.Estimated1RM, orig.MaxBrzycki, orig.MaxEpley)
	}
	if clone.Notes != notes {
		t.Errorf("Notes = %q, want %q", clone.Notes, notes)
	}
	if clone.ID != orig.ID {
		t.Error("clone must keep the original identity")
	}
	// Original is untouched
	if orig.Notes != "" {
		t.Error("original mutated by CloneWithUpdate")
	}
}

func TestCloneWithUpdate_RecomputesFromNewInputs(t *testing.T) {
	orig := mustMaxLog(t, 100, 5)

	weight := 110.0
	clone, err := orig.CloneWithUpdate(MaxLogUpdate{Weight: &weight})
	if err != nil {
		t.Fatalf("CloneWithUpdate error = %v", err)
	}

	if clone.Weight != 110 {
		t.Errorf("Weight = %v, want 110", clone.Weight)
	}
	if math.Abs(clone.MaxBrzycki-123.75) > 0.01 { // 110 * 36 / 32
		t.Errorf("MaxBrzycki = %v, want 123.75", clone.MaxBrzycki)
	}
	if clone.Estimated1RM <= orig.Estimated1RM {
		t.Errorf("Estimated1RM did not increase: %v -> %v", orig.Estimated1RM, clone.Estimated1RM)
	}
}

func TestCloneWithUpdate_RejectsInvalidOverrides(t *testing.T) {
	orig := mustMaxLog(t, 100, 5)

	badWeight := -5.0
	if _, err := orig.CloneWithUpdate(MaxLogUpdate{Weight: &badWeight}); !IsValidation(err) {
		t.Errorf("negative weight: error = %v, want *ValidationError", err)
	}

	badReps := 40
	if _, err := orig.CloneWithUpdate(MaxLogUpdate{Reps: &badReps}); !IsValidation(err) {
		t.Errorf("40 reps: error = %v, want *ValidationError", err)
	}

	future := time.Now().Add(24 * time.Hour)
	if _, err := orig.CloneWithUpdate(MaxLogUpdate{Date: &future}); !IsValidation(err) {
		t.Errorf("future date: error = %v, want *ValidationError", err)
	}
}

func TestMaxLog_EqualIsIdentity(t *testing.T) {
	a := mustMaxLog(t, 100, 5)
	b := mustMaxLog(t, 100, 5)

	if a.Equal(b) {
		t.Error("two attempts with identical measurements must remain distinct records")
	}
	if !a.Equal(a) {
		t.Error("a record must equal itself")
	}
}

func TestMaxLog_Volume(t *testing.T) {
	log := mustMaxLog(t, 102, 4)
	if log.Volume() != 408 {
		t.Errorf("Volume() = %v, want 408", log.Volume())
	}
}
