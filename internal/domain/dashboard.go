package domain

// VolumeSummary aggregates training volume over a window.
// Volume = sum(weight * reps) over completed sets.
type VolumeSummary struct {
	TotalVolume float64 `json:"total_volume"`
	TotalSets   int     `json:"total_sets"`
	TotalReps   int     `json:"total_reps"`
	Workouts    int     `json:"workouts"`
}

// DashboardSummary is the aggregated analytics payload for a profile's
// home screen.
type DashboardSummary struct {
	Strongest      []PersonalRecord        `json:"strongest"`
	Trends         []PerformanceComparison `json:"trends"`
	RecentWorkouts []*Workout              `json:"recent_workouts"`
	WeekVolume     VolumeSummary           `json:"week_volume"`
}
