package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"gorm.io/gorm"
)

// ProjectService handles project creation and the plain listing. The
// vote-status listing lives on VoteService.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) Create(name, description, groupName string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.New(apperr.InvalidInput, "Project name is required")
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: trimOptional(description),
		GroupName:   trimOptional(groupName),
		VoteCount:   0,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &project, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func trimOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
