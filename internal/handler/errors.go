package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
)

// respondError translates domain errors to HTTP responses. Validation
// failures map to 400, missing entities to 404, everything else to 500.
func respondError(c *fiber.Ctx, err error) error {
	if domain.IsValidation(err) || errors.Is(err, domain.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrWorkoutNotFound),
		errors.Is(err, domain.ErrMaxLogNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateExercise):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
