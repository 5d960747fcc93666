package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/middleware"
	"github.com/showcaseapp/showcase-backend/internal/services"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Create handles POST /api/feedback
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	feedback, err := h.feedbackService.Submit(userID, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FeedbackResponse{
		Success:  true,
		Feedback: *feedback,
	})
}

// List handles GET /api/feedbacks (admin only, gated in routes).
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	entries, err := h.feedbackService.ListAll()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.FeedbackListResponse{
		Success:   true,
		Feedbacks: entries,
		Count:     len(entries),
	})
}
