package handlers

import (
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/maheshrc27/autoshorts-api/internal/transfer"
	"github.com/maheshrc27/autoshorts-api/pkg/utils"
)

type AuthHandler struct {
	cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// CreateToken mints a 24h operator session for dashboard clients that hold
// the shared secret. Automation clients use the API key instead.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	var req transfer.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.cfg.SecretKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid secret",
		})
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, "operator", 24*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": token,
	})
}
