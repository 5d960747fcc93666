package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"gorm.io/gorm"
)

// VoteService is the voting engine. Cast runs as a single transaction so the
// vote row and the project's denormalized vote_count always move together;
// readers never observe one without the other.
type VoteService struct {
	db *gorm.DB
	// limit is the per-user vote cap checked at write time. Zero disables
	// the check (the cap is then informational only, surfaced by Status).
	limit int
}

func NewVoteService(db *gorm.DB, limit int) *VoteService {
	return &VoteService{db: db, limit: limit}
}

// MaxVotes returns the configured per-user cap.
func (s *VoteService) MaxVotes() int {
	return s.limit
}

// Cast records userID's vote for projectID and returns the updated project.
//
// Precondition failures map to distinct error kinds: empty id -> InvalidInput,
// unknown project -> NotFound, duplicate vote or exhausted cap -> Conflict.
// The duplicate pre-check is a fast path; the unique index on
// (user_id, project_id) is the authoritative guard and a racing insert
// surfaces as gorm.ErrDuplicatedKey, which also maps to Conflict.
func (s *VoteService) Cast(userID, projectID string) (*models.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, apperr.New(apperr.InvalidInput, "Project ID is required")
	}

	var project models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFound, "Project not found")
			}
			return fmt.Errorf("failed to load project: %w", err)
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND project_id = ?", userID, projectID).First(&existing).Error
		if err == nil {
			return apperr.New(apperr.Conflict, "You have already voted for this project")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing vote: %w", err)
		}

		if s.limit > 0 {
			var used int64
			if err := tx.Model(&models.Vote{}).Where("user_id = ?", userID).Count(&used).Error; err != nil {
				return fmt.Errorf("failed to count votes: %w", err)
			}
			if used >= int64(s.limit) {
				return apperr.New(apperr.Conflict, "Vote limit reached")
			}
		}

		vote := models.Vote{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProjectID: projectID,
		}
		if err := tx.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.New(apperr.Conflict, "You have already voted for this project")
			}
			return fmt.Errorf("failed to create vote: %w", err)
		}

		// Atomic increment at the storage layer; a load-then-store here
		// would lose updates under concurrent votes on the same project.
		if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
			Update("vote_count", gorm.Expr("vote_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to increment vote count: %w", err)
		}

		if err := tx.First(&project, "id = ?", projectID).Error; err != nil {
			return fmt.Errorf("failed to reload project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Status returns all projects ordered by vote count (ties broken newest
// first), annotated with whether userID voted for each, plus the viewer's
// used/remaining vote tally. Pure read.
func (s *VoteService) Status(userID string) (*dto.VotingStatusResponse, error) {
	var projects []models.Project
	if err := s.db.Order("vote_count DESC, created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var votes []models.Vote
	if err := s.db.Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	voted := make(map[string]bool, len(votes))
	for _, v := range votes {
		voted[v.ProjectID] = true
	}

	annotated := make([]dto.ProjectVoteStatus, 0, len(projects))
	for _, p := range projects {
		annotated = append(annotated, dto.ProjectVoteStatus{
			Project:  p,
			HasVoted: voted[p.ID],
		})
	}

	remaining := s.limit - len(votes)
	if remaining < 0 {
		remaining = 0
	}

	return &dto.VotingStatusResponse{
		Success:        true,
		Projects:       annotated,
		UserVoteCount:  len(votes),
		MaxVotes:       s.limit,
		RemainingVotes: remaining,
	}, nil
}
