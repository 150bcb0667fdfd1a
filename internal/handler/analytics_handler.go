package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/middleware"
	"github.com/mansoorceksport/ironlog/internal/service"
)

// AnalyticsHandler exposes the derived views: personal records, strongest
// lifts, performance trends and the dashboard summary.
type AnalyticsHandler struct {
	recordService    *service.RecordService
	dashboardService *service.DashboardService
}

func NewAnalyticsHandler(recordService *service.RecordService, dashboardService *service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{
		recordService:    recordService,
		dashboardService: dashboardService,
	}
}

// Records handles GET /v1/me/records
func (h *AnalyticsHandler) Records(c *fiber.Ctx) error {
	records, err := h.recordService.PersonalRecords(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// Strongest handles GET /v1/me/records/strongest
func (h *AnalyticsHandler) Strongest(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	records, err := h.recordService.StrongestExercises(c.Context(), middleware.GetProfileID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

// Performance handles GET /v1/me/records/:exerciseID/performance
func (h *AnalyticsHandler) Performance(c *fiber.Ctx) error {
	timeframe := domain.Timeframe(c.Query("timeframe", string(domain.TimeframeMonth)))

	comparison, err := h.recordService.ComparePerformance(c.Context(), middleware.GetProfileID(c),
		c.Params("exerciseID"), timeframe)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comparison)
}

// Dashboard handles GET /v1/me/dashboard
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.dashboardService.GetSummary(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
