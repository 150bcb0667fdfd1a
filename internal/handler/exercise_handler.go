package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
)

// ExerciseHandler covers library CRUD. The library is global, shared by all
// profiles on the device.
type ExerciseHandler struct {
	exerciseRepo domain.ExerciseRepository
}

func NewExerciseHandler(exerciseRepo domain.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseRepo: exerciseRepo,
	}
}

// List handles GET /v1/exercises
func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	filter := make(map[string]interface{})
	if name := c.Query("name"); name != "" {
		filter["name"] = name
	}
	if group := c.Query("muscle_group"); group != "" {
		filter["muscle_group"] = group
	}
	if equipment := c.Query("equipment"); equipment != "" {
		filter["equipment"] = equipment
	}

	exercises, err := h.exerciseRepo.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exercises)
}

// Get handles GET /v1/exercises/:id
func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	exercise, err := h.exerciseRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exercise)
}

// Create handles POST /v1/exercises
func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if err := h.exerciseRepo.Create(c.Context(), &req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// Update handles PUT /v1/exercises/:id
func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	var req domain.Exercise
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	req.ID = c.Params("id")
	if err := h.exerciseRepo.Update(c.Context(), &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}

// Delete handles DELETE /v1/exercises/:id
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	if err := h.exerciseRepo.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
