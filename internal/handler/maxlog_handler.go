package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/mansoorceksport/ironlog/internal/service"
)

type MaxLogHandler struct {
	maxLogService   *service.MaxLogService
	maxUploadSizeMB int64
}

func NewMaxLogHandler(maxLogService *service.MaxLogService, maxUploadSizeMB int64) *MaxLogHandler {
	return &MaxLogHandler{
		maxLogService:   maxLogService,
		maxUploadSizeMB: maxUploadSizeMB,
	}
}

// Create handles POST /v1/me/maxlogs
func (h *MaxLogHandler) Create(c *fiber.Ctx) error {
	var req service.MaxLogInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	maxLog, err := h.maxLogService.Create(c.Context(), middleware.GetProfileID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(maxLog)
}

// CreateBatch handles POST /v1/me/maxlogs/batch. The batch is atomic: one
// invalid entry rejects the whole request.
func (h *MaxLogHandler) CreateBatch(c *fiber.Ctx) error {
	var req struct {
		Entries []service.MaxLogInput `json:"entries"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if len(req.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "entries is required"})
	}

	maxLogs, err := h.maxLogService.CreateBatch(c.Context(), middleware.GetProfileID(c), req.Entries)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(maxLogs)
}

// List handles GET /v1/me/maxlogs, optionally filtered by exercise_id
func (h *MaxLogHandler) List(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)

	if exerciseID := c.Query("exercise_id"); exerciseID != "" {
		maxLogs, err := h.maxLogService.ListByExercise(c.Context(), profileID, exerciseID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(maxLogs)
	}

	maxLogs, err := h.maxLogService.List(c.Context(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(maxLogs)
}

// Get handles GET /v1/me/maxlogs/:id
func (h *MaxLogHandler) Get(c *fiber.Ctx) error {
	maxLog, err := h.maxLogService.Get(c.Context(), middleware.GetProfileID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(maxLog)
}

// Update handles PATCH /v1/me/maxlogs/:id. Derived estimates are recomputed
// whenever weight or reps change.
func (h *MaxLogHandler) Update(c *fiber.Ctx) error {
	var req domain.MaxLogUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	maxLog, err := h.maxLogService.Update(c.Context(), middleware.GetProfileID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(maxLog)
}

// Delete handles DELETE /v1/me/maxlogs/:id
func (h *MaxLogHandler) Delete(c *fiber.Ctx) error {
	if err := h.maxLogService.Delete(c.Context(), middleware.GetProfileID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// AttachProof handles POST /v1/me/maxlogs/:id/attachment, a multipart upload
// of a lift proof photo or video.
func (h *MaxLogHandler) AttachProof(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	if fileHeader.Size > h.maxUploadSizeMB*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "file too large"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read file"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	maxLog, err := h.maxLogService.AttachProof(c.Context(), middleware.GetProfileID(c), c.Params("id"),
		data, fileHeader.Filename, contentType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(maxLog)
}
