package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/middleware"
	"github.com/showcaseapp/showcase-backend/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	voteService    *services.VoteService
}

func NewProjectHandler(projectService *services.ProjectService, voteService *services.VoteService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, voteService: voteService}
}

// List handles GET /api/projects — plain listing, newest first.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.ProjectListResponse{
		Success:  true,
		Projects: projects,
	})
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	project, err := h.projectService.Create(req.Name, req.Description, req.GroupName)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProjectResponse{
		Success: true,
		Project: *project,
	})
}

// VotingStatus handles GET /api/projects/voting — the board ordered by vote
// count with the viewer's hasVoted flags and remaining-vote tally.
func (h *ProjectHandler) VotingStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.voteService.Status(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

// Vote handles POST /api/projects/:id/vote
func (h *ProjectHandler) Vote(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	project, err := h.voteService.Cast(userID, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.VoteResponse{
		Success: true,
		Project: *project,
		Message: "Vote recorded successfully",
	})
}
