package domain

import "time"

// PersonalRecord is the derived best-known lift for one exercise. It is
// recomputed on demand from the max-log history and never persisted.
type PersonalRecord struct {
	ExerciseID   string       `json:"exercise_id"`
	Weight       float64      `json:"weight"`
	Reps         int          `json:"reps"`
	Estimated1RM float64      `json:"estimated_1rm"`
	Date         time.Time    `json:"date"`
	Improvement  *Improvement `json:"improvement,omitempty"` // present only when a prior record existed
}

// Improvement captures the delta between a new record and the best it
// replaced. WeightIncrease can be zero or negative: a higher-rep set at a
// lower weight can still raise the estimated 1RM.
type Improvement struct {
	PreviousWeight float64   `json:"previous_weight"`
	PreviousDate   time.Time `json:"previous_date"`
	WeightIncrease float64   `json:"weight_increase"`
	DaysBetween    int       `json:"days_between"`
}

// Trend classifies the direction of an exercise's estimated 1RM over a
// lookback window.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendStable           Trend = "stable"
	TrendDeclining        Trend = "declining"
	TrendInsufficientData Trend = "insufficient_data"
)

// Timeframe selects the trailing comparison window for trend analysis.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"    // trailing 7 days
	TimeframeMonth   Timeframe = "month"   // trailing calendar month
	TimeframeQuarter Timeframe = "quarter" // trailing 3 calendar months
)

// Valid reports whether the timeframe is one of the supported windows.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeWeek, TimeframeMonth, TimeframeQuarter:
		return true
	}
	return false
}

// PerformanceComparison is the result of comparing the newest qualifying
// entry in a window against the oldest.
type PerformanceComparison struct {
	ExerciseID    string    `json:"exercise_id"`
	Timeframe     Timeframe `json:"timeframe"`
	Trend         Trend     `json:"trend"`
	ChangePercent float64   `json:"change_percent"`
	Recent        float64   `json:"recent"`   // newest estimated 1RM in window
	Previous      float64   `json:"previous"` // oldest estimated 1RM in window
}

// PRAlertType classifies a detected personal record.
type PRAlertType string

const (
	// AlertFirstPR fires when no prior log exists for the exercise.
	AlertFirstPR PRAlertType = "first_pr"
	// AlertNewPR fires when the set's weight exceeds the best weight ever logged.
	AlertNewPR PRAlertType = "new_pr"
	// AlertRepPR fires at equal weight with more reps than previously logged
	// at that weight.
	AlertRepPR PRAlertType = "rep_pr"
	// AlertVolumePR fires when weight x reps beats the highest known volume
	// and no weight or rep PR applies.
	AlertVolumePR PRAlertType = "volume_pr"
)

// PRAlert is an ephemeral notification produced by PR detection for one
// completed workout. At most one alert is emitted per exercise.
type PRAlert struct {
	ExerciseID string      `json:"exercise_id"`
	Type       PRAlertType `json:"type"`
	Weight     float64     `json:"weight"`
	Reps       int         `json:"reps"`

	// Previous-best context so consumers never recompute history.
	PreviousWeight float64 `json:"previous_weight,omitempty"`
	WeightIncrease float64 `json:"weight_increase,omitempty"`
}
