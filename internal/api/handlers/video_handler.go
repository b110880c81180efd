package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/autoshorts-api/internal/service"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

type VideoHandler struct {
	s service.VideoService
}

func NewVideoHandler(service service.VideoService) *VideoHandler {
	return &VideoHandler{s: service}
}

func (h *VideoHandler) CreateVideo(c *fiber.Ctx) error {
	var req transfer.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	video, err := h.s.Synthesize(c.Context(), req.Script, req.VoiceType, req.VideoStyle)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"video": video,
	})
}

func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"videos": videos,
	})
}

func (h *VideoHandler) RemoveVideo(c *fiber.Ctx) error {
	id := c.Query("id")

	if err := h.s.Remove(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Video deleted successfully",
	})
}
