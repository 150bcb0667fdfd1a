package service

import (
	"math"

	"github.com/mansoorceksport/ironlog/internal/domain"
)

// weightTolerance is the band within which two logged weights count as the
// same load. Unit conversions (lb<->kg) can produce near-equal floats like
// 102.0 vs 102.00001; anything within 0.01 weight units is one load.
const weightTolerance = 0.01

// exerciseHistory summarizes the pre-workout max-log history for one
// exercise. Detection evaluates every set against this snapshot, never
// against other sets of the same workout.
type exerciseHistory struct {
	bestWeight float64
	bestVolume float64
	logs       []domain.MaxLog
}

func (h *exerciseHistory) maxRepsAt(weight float64) int {
	maxReps := 0
	for _, l := range h.logs {
		if sameWeight(l.Weight, weight) && l.Reps > maxReps {
			maxReps = l.Reps
		}
	}
	return maxReps
}

func sameWeight(a, b float64) bool {
	return math.Abs(a-b) <= weightTolerance
}

// CheckForRecords inspects a completed workout against the existing max-log
// history and returns at most one alert per exercise. An in-progress
// workout (no end time) is never checked; no qualifying sets is a normal
// state and yields an empty result, not an error.
func CheckForRecords(workout domain.Workout, history []domain.MaxLog) []domain.PRAlert {
	if !workout.Completed() {
		return nil
	}

	byExercise := make(map[string]*exerciseHistory)
	for _, l := range history {
		h, ok := byExercise[l.ExerciseID]
		if !ok {
			h = &exerciseHistory{}
			byExercise[l.ExerciseID] = h
		}
		if l.Weight > h.bestWeight {
			h.bestWeight = l.Weight
		}
		if v := l.Volume(); v > h.bestVolume {
			h.bestVolume = v
		}
		h.logs = append(h.logs, l)
	}

	var alerts []domain.PRAlert
	for _, ex := range workout.Exercises {
		var best *domain.PRAlert
		for _, set := range ex.Sets {
			if !set.Completed || set.Weight <= 0 || set.Reps <= 0 {
				continue
			}
			alert := classifySet(ex.ExerciseID, set, byExercise[ex.ExerciseID])
			if alert == nil {
				continue
			}
			// Keep the single best-weight alert per exercise; ties keep the
			// first encountered.
			if best == nil || alert.Weight > best.Weight {
				best = alert
			}
		}
		if best != nil {
			alerts = append(alerts, *best)
		}
	}
	return alerts
}

// classifySet evaluates one eligible set against the pre-workout history.
func classifySet(exerciseID string, set domain.WorkoutSet, h *exerciseHistory) *domain.PRAlert {
	if h == nil || len(h.logs) == 0 {
		return &domain.PRAlert{
			ExerciseID: exerciseID,
			Type:       domain.AlertFirstPR,
			Weight:     set.Weight,
			Reps:       set.Reps,
		}
	}

	if set.Weight > h.bestWeight && !sameWeight(set.Weight, h.bestWeight) {
		return &domain.PRAlert{
			ExerciseID:     exerciseID,
			Type:           domain.AlertNewPR,
			Weight:         set.Weight,
			Reps:           set.Reps,
			PreviousWeight: h.bestWeight,
			WeightIncrease: set.Weight - h.bestWeight,
		}
	}

	if sameWeight(set.Weight, h.bestWeight) && set.Reps > h.maxRepsAt(set.Weight) {
		return &domain.PRAlert{
			ExerciseID:     exerciseID,
			Type:           domain.AlertRepPR,
			Weight:         set.Weight,
			Reps:           set.Reps,
			PreviousWeight: h.bestWeight,
		}
	}

	if set.Weight*float64(set.Reps) > h.bestVolume {
		return &domain.PRAlert{
			ExerciseID:     exerciseID,
			Type:           domain.AlertVolumePR,
			Weight:         set.Weight,
			Reps:           set.Reps,
			PreviousWeight: h.bestWeight,
		}
	}

	return nil
}
