package strength

import (
	"errors"
	"math"
	"testing"
)

func TestEstimate_Brzycki(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"100kg x 5", 100, 5, 112.5},  // 100 * 36 / 32
		{"80kg x 10", 80, 10, 106.67}, // 80 * 36 / 27
		{"60kg x 3", 60, 3, 63.53},    // 60 * 36 / 34
		{"1 rep is same as weight", 100, 1, 100},
		{"120kg single", 120, 1, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.weight, tt.reps, FormulaBrzycki)
			if err != nil {
				t.Fatalf("Estimate(%v, %v, brzycki) error = %v", tt.weight, tt.reps, err)
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Estimate(%v, %v, brzycki) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestEstimate_Epley(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"100kg x 5", 100, 5, 116.67},  // 100 * (1 + 5/30)
		{"90kg x 6", 90, 6, 108},       // 90 * (1 + 6/30)
		{"80kg x 10", 80, 10, 106.67},  // 80 * (1 + 10/30)
		{"1 rep is same as weight", 100, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.weight, tt.reps, FormulaEpley)
			if err != nil {
				t.Fatalf("Estimate(%v, %v, epley) error = %v", tt.weight, tt.reps, err)
			}
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Estimate(%v, %v, epley) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestEstimate_Average(t *testing.T) {
	brzycki, err := Estimate(100, 5, FormulaBrzycki)
	if err != nil {
		t.Fatal(err)
	}
	epley, err := Estimate(100, 5, FormulaEpley)
	if err != nil {
		t.Fatal(err)
	}
	want := (brzycki + epley) / 2

	got, err := Estimate(100, 5, FormulaAverage)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Estimate average = %v, want %v", got, want)
	}
	// 100x5 aggregate must land strictly between the weight itself and any
	// wildly optimistic bound
	if got <= 100 || got >= 130 {
		t.Errorf("aggregate estimate %v out of expected (100, 130) range", got)
	}
}

func TestEstimate_SingleRepIsIdentity(t *testing.T) {
	for _, f := range []Formula{FormulaBrzycki, FormulaEpley, FormulaAverage} {
		got, err := Estimate(137.5, 1, f)
		if err != nil {
			t.Fatalf("Estimate(137.5, 1, %s) error = %v", f, err)
		}
		if got != 137.5 {
			t.Errorf("Estimate(137.5, 1, %s) = %v, want 137.5", f, got)
		}
	}
}

func TestEstimate_AlwaysAboveWeightForMultiRep(t *testing.T) {
	// Every formula is a monotonically increasing function of reps at fixed
	// weight, so any multi-rep estimate must exceed the weight lifted.
	for _, f := range []Formula{FormulaBrzycki, FormulaEpley, FormulaAverage} {
		for reps := 2; reps <= 20; reps++ {
			got, err := Estimate(100, reps, f)
			if err != nil {
				t.Fatalf("Estimate(100, %d, %s) error = %v", reps, f, err)
			}
			if got <= 100 {
				t.Errorf("Estimate(100, %d, %s) = %v, want > 100", reps, f, got)
			}
		}
	}
}

func TestEstimate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		reps    int
		formula Formula
		wantErr error
	}{
		{"zero weight", 0, 5, FormulaBrzycki, ErrInvalidWeight},
		{"negative weight", -100, 5, FormulaBrzycki, ErrInvalidWeight},
		{"zero reps", 100, 0, FormulaBrzycki, ErrInvalidReps},
		{"negative reps", 100, -5, FormulaEpley, ErrInvalidReps},
		{"brzycki singularity", 100, 37, FormulaBrzycki, ErrRepsOutOfRange},
		{"beyond singularity", 100, 50, FormulaAverage, ErrRepsOutOfRange},
		{"unknown formula", 100, 5, Formula("lombardi"), ErrUnknownFormula},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Estimate(tt.weight, tt.reps, tt.formula)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Estimate(%v, %v, %s) error = %v, want %v",
					tt.weight, tt.reps, tt.formula, err, tt.wantErr)
			}
		})
	}
}

func TestEstimateAll(t *testing.T) {
	all, err := EstimateAll(100, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(Registered()) {
		t.Fatalf("EstimateAll returned %d estimates, want %d", len(all), len(Registered()))
	}
	if math.Abs(all[FormulaBrzycki]-112.5) > 0.01 {
		t.Errorf("brzycki = %v, want 112.5", all[FormulaBrzycki])
	}
	if math.Abs(all[FormulaEpley]-116.67) > 0.01 {
		t.Errorf("epley = %v, want 116.67", all[FormulaEpley])
	}
}
