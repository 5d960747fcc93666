package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/showcaseapp/showcase-backend/internal/config"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired gates admin-only routes. A caller passes when:
// 1. the X-Admin-Token header matches the configured token, or
// 2. their Telegram ID claim is on the configured allow-list, or
// 3. their user row carries the admin role.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	allowedIDs := cfg.AdminIDs()

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if telegramID := TelegramID(c); telegramID != "" && contains(allowedIDs, telegramID) {
			return c.Next()
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.Role == "admin" {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden: admin access required",
		})
	}
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
