package handler

import (
	"crypto/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/oklog/ulid/v2"
)

// ProfileHandler covers profile CRUD. Listing and creating profiles is open
// (device setup happens before any token exists); /v1/me/profile is scoped
// to the authenticated profile.
type ProfileHandler struct {
	profileRepo domain.ProfileRepository
}

func NewProfileHandler(profileRepo domain.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
	}
}

// Create handles POST /v1/profiles
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Name         string  `json:"name"`
		Birthday     string  `json:"birthday"`
		BodyweightKg float64 `json:"bodyweight_kg"`
		Unit         string  `json:"unit"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if req.Unit == "" {
		req.Unit = domain.UnitKg
	}
	if req.Unit != domain.UnitKg && req.Unit != domain.UnitLb {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unit must be kg or lb"})
	}

	now := time.Now()
	profile := &domain.Profile{
		ID:           ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Name:         req.Name,
		Birthday:     req.Birthday,
		BodyweightKg: req.BodyweightKg,
		Unit:         req.Unit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.profileRepo.Create(c.Context(), profile); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// List handles GET /v1/profiles
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.profileRepo.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profiles)
}

// Me handles GET /v1/me/profile
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	profile, err := h.profileRepo.GetByID(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMe handles PUT /v1/me/profile
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	profile, err := h.profileRepo.GetByID(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Name         *string  `json:"name"`
		Birthday     *string  `json:"birthday"`
		BodyweightKg *float64 `json:"bodyweight_kg"`
		Unit         *string  `json:"unit"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		profile.Name = *req.Name
	}
	if req.Birthday != nil {
		profile.Birthday = *req.Birthday
	}
	if req.BodyweightKg != nil {
		profile.BodyweightKg = *req.BodyweightKg
	}
	if req.Unit != nil {
		if *req.Unit != domain.UnitKg && *req.Unit != domain.UnitLb {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unit must be kg or lb"})
		}
		profile.Unit = *req.Unit
	}
	profile.UpdatedAt = time.Now()

	if err := h.profileRepo.Update(c.Context(), profile); err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteMe handles DELETE /v1/me/profile
func (h *ProfileHandler) DeleteMe(c *fiber.Ctx) error {
	if err := h.profileRepo.Delete(c.Context(), middleware.GetProfileID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
