package middleware

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/autoshorts-api/configs"
	"github.com/maheshrc27/autoshorts-api/pkg/utils"
)

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		apiKey := c.Query("api_key")
		if apiKey == "" {
			apiKey = c.Get("X-Api-Key")
		}

		if tokenString == "" && apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Keys or cookies",
			})
		}

		if apiKey != "" {
			if m.cfg.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.APIKey)) != 1 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid API key",
				})
			}
			c.Locals("subject", "api")
		} else if tokenString != "" {

			claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
			if err != nil {
				c.Cookie(&fiber.Cookie{
					Name:   m.cfg.CookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1, // Delete cookie
				})

				log.Printf("Token validation failed: %v", err)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired token",
				})
			}

			c.Locals("subject", claims.Subject)
		}
		return c.Next()
	}
}
