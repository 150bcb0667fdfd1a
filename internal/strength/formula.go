// Package strength provides one-rep-max (1RM) estimation formulas.
// All functions are pure; callers pass measured weight/reps and get back
// an estimate or a typed error.
package strength

import (
	"errors"
	"math"
)

// Formula selects a 1RM estimation method
type Formula string

const (
	// FormulaBrzycki is most accurate for reps < 10: weight * 36 / (37 - reps)
	FormulaBrzycki Formula = "brzycki"
	// FormulaEpley is the Baechle/Epley variant: weight * (1 + reps/30)
	FormulaEpley Formula = "epley"
	// FormulaAverage is the arithmetic mean of all registered formulas
	FormulaAverage Formula = "average"
)

// MaxReps is the highest rep count any registered formula accepts.
// The Brzycki denominator (37 - reps) hits zero at 37, and sets that long
// carry no strength signal anyway, so everything above 36 is rejected.
const MaxReps = 36

var (
	ErrInvalidWeight  = errors.New("weight must be positive")
	ErrInvalidReps    = errors.New("reps must be a positive integer")
	ErrRepsOutOfRange = errors.New("reps out of range for strength estimation")
	ErrUnknownFormula = errors.New("unknown estimation formula")
)

// formulas is the closed registry of concrete estimation methods.
// FormulaAverage is derived from this registry, so adding an entry here
// automatically feeds the aggregate without touching any caller.
var formulas = map[Formula]func(weight float64, reps int) float64{
	FormulaBrzycki: brzycki,
	FormulaEpley:   epley,
}

// Registered returns the concrete (non-aggregate) formulas.
func Registered() []Formula {
	return []Formula{FormulaBrzycki, FormulaEpley}
}

// Estimate calculates the estimated 1RM for a set of weight x reps.
// A single rep is definitionally its own max, so reps == 1 returns weight
// unchanged regardless of formula.
func Estimate(weight float64, reps int, f Formula) (float64, error) {
	if weight <= 0 {
		return 0, ErrInvalidWeight
	}
	if reps < 1 {
		return 0, ErrInvalidReps
	}
	if reps > MaxReps {
		return 0, ErrRepsOutOfRange
	}
	if reps == 1 {
		return weight, nil
	}

	if f == FormulaAverage {
		sum := 0.0
		for _, calc := range formulas {
			sum += calc(weight, reps)
		}
		return round2(sum / float64(len(formulas))), nil
	}

	calc, ok := formulas[f]
	if !ok {
		return 0, ErrUnknownFormula
	}
	return round2(calc(weight, reps)), nil
}

// EstimateAll returns one estimate per registered concrete formula.
func EstimateAll(weight float64, reps int) (map[Formula]float64, error) {
	out := make(map[Formula]float64, len(formulas))
	for _, f := range Registered() {
		est, err := Estimate(weight, reps, f)
		if err != nil {
			return nil, err
		}
		out[f] = est
	}
	return out, nil
}

func brzycki(weight float64, reps int) float64 {
	return weight * 36.0 / float64(37-reps)
}

func epley(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30.0)
}

// round2 rounds to 2 decimal places, enough precision for any plate math
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
