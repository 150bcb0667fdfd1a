package handler

import (
	"crypto/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/oklog/ulid/v2"
)

type PlanHandler struct {
	planRepo domain.TrainingPlanRepository
}

func NewPlanHandler(planRepo domain.TrainingPlanRepository) *PlanHandler {
	return &PlanHandler{
		planRepo: planRepo,
	}
}

// Create handles POST /v1/me/plans
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Name      string                `json:"name"`
		Notes     string                `json:"notes"`
		Exercises []domain.PlanExercise `json:"exercises"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	now := time.Now()
	plan := &domain.TrainingPlan{
		ID:        ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		ProfileID: middleware.GetProfileID(c),
		Name:      req.Name,
		Notes:     req.Notes,
		Exercises: req.Exercises,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.planRepo.Create(c.Context(), plan); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// List handles GET /v1/me/plans
func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.planRepo.ListByProfile(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

// Get handles GET /v1/me/plans/:id
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	plan, err := h.planRepo.GetByID(c.Context(), middleware.GetProfileID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// Update handles PUT /v1/me/plans/:id
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)
	plan, err := h.planRepo.GetByID(c.Context(), profileID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Name      *string                `json:"name"`
		Notes     *string                `json:"notes"`
		Exercises *[]domain.PlanExercise `json:"exercises"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		plan.Name = *req.Name
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}
	if req.Exercises != nil {
		plan.Exercises = *req.Exercises
	}
	plan.UpdatedAt = time.Now()

	if err := h.planRepo.Update(c.Context(), plan); err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

// Delete handles DELETE /v1/me/plans/:id
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.planRepo.Delete(c.Context(), middleware.GetProfileID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
