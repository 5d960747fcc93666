package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/dto"
)

// fail converts a service error into its HTTP response. Unclassified errors
// are logged and masked as 500s; classified ones surface their message.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   true,
		Message: apperr.PublicMessage(err),
	})
}
