package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/autoshorts-api/internal/service"
)

type AnalyticsHandler struct {
	s *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	dateRange := c.Query("range", "7d")

	summary, err := h.s.Summary(c.Context(), dateRange)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
