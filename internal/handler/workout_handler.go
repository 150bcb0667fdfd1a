package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/mansoorceksport/ironlog/internal/service"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// Start handles POST /v1/me/workouts
func (h *WorkoutHandler) Start(c *fiber.Ctx) error {
	var req struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	workout, err := h.workoutService.Start(c.Context(), middleware.GetProfileID(c), req.PlanID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// List handles GET /v1/me/workouts
func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	workouts, err := h.workoutService.List(c.Context(), middleware.GetProfileID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// Get handles GET /v1/me/workouts/:id
func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	workout, err := h.workoutService.Get(c.Context(), middleware.GetProfileID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// AddExercise handles POST /v1/me/workouts/:id/exercises
func (h *WorkoutHandler) AddExercise(c *fiber.Ctx) error {
	var req struct {
		ExerciseID string `json:"exercise_id"`
		TargetSets int    `json:"target_sets"`
		TargetReps int    `json:"target_reps"`
		RestSec    int    `json:"rest_seconds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.ExerciseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "exercise_id is required"})
	}

	workout, err := h.workoutService.AddExercise(c.Context(), middleware.GetProfileID(c), c.Params("id"),
		req.ExerciseID, req.TargetSets, req.TargetReps, req.RestSec)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// LogSet handles PATCH /v1/me/workouts/:id/sets
func (h *WorkoutHandler) LogSet(c *fiber.Ctx) error {
	var req struct {
		ExerciseID string  `json:"exercise_id"`
		SetIndex   int     `json:"set_index"`
		Weight     float64 `json:"weight"`
		Reps       int     `json:"reps"`
		Remarks    string  `json:"remarks"`
		Completed  bool    `json:"completed"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.ExerciseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "exercise_id is required"})
	}

	set := domain.WorkoutSet{
		SetIndex:  req.SetIndex,
		Weight:    req.Weight,
		Reps:      req.Reps,
		Remarks:   req.Remarks,
		Completed: req.Completed,
	}

	workout, err := h.workoutService.LogSet(c.Context(), middleware.GetProfileID(c), c.Params("id"), req.ExerciseID, set)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// Complete handles POST /v1/me/workouts/:id/complete. The response carries
// the PR alerts detected against the pre-workout history.
func (h *WorkoutHandler) Complete(c *fiber.Ctx) error {
	alerts, err := h.workoutService.Complete(c.Context(), middleware.GetProfileID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if alerts == nil {
		alerts = []domain.PRAlert{}
	}
	return c.JSON(fiber.Map{
		"message":   "workout completed",
		"pr_alerts": alerts,
	})
}
