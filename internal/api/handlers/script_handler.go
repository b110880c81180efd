package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/autoshorts-api/internal/service"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
)

type ScriptHandler struct {
	s service.ScriptService
}

func NewScriptHandler(service service.ScriptService) *ScriptHandler {
	return &ScriptHandler{s: service}
}

func (h *ScriptHandler) GenerateScripts(c *fiber.Ctx) error {
	var req transfer.GenerateScriptsRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	scripts, err := h.s.Generate(c.Context(), req.Niche, req.Duration, req.Tone, req.Count)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"scripts": scripts,
	})
}
