package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/autoshorts-api/internal/queue"
	"github.com/maheshrc27/autoshorts-api/internal/service"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

type PublishHandler struct {
	s           service.PublishService
	AsynqClient *asynq.Client
}

func NewPublishHandler(service service.PublishService, asynqClient *asynq.Client) *PublishHandler {
	return &PublishHandler{s: service, AsynqClient: asynqClient}
}

func (h *PublishHandler) PublishVideo(c *fiber.Ctx) error {
	var req transfer.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	metadata := transfer.VideoMetadata{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}

	result, err := h.s.PublishNow(c.Context(), req.VideoID, metadata, req.AutoOptimize)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PublishHandler) ScheduleVideo(c *fiber.Ctx) error {
	var req transfer.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	metadata := transfer.VideoMetadata{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}

	entry, delay, err := h.s.Schedule(c.Context(), req.VideoID, metadata, req.ScheduleDate, req.ScheduleTime, req.AutoOptimize)
	if err != nil {
		return respondError(c, err)
	}

	err = queue.EnqueuePublish(h.AsynqClient, queue.PublishVideoPayload{EntryID: entry.ID}, delay)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling publication",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"scheduled": entry,
	})
}

func (h *PublishHandler) ListScheduled(c *fiber.Ctx) error {
	entries, err := h.s.ListScheduled(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"videos": entries,
	})
}
