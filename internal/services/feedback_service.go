package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"gorm.io/gorm"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Submit stores a rating with optional comments. Comments are trimmed and
// stored as NULL when empty.
func (s *FeedbackService) Submit(userID string, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.New(apperr.InvalidInput, "Rating must be a number between 1 and 5")
	}

	feedback := models.Feedback{
		ID:           uuid.NewString(),
		UserID:       userID,
		Rating:       req.Rating,
		Liked:        trimOptional(req.Liked),
		Improvements: trimOptional(req.Improvements),
	}

	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return &feedback, nil
}

// ListAll returns every feedback entry joined with its submitter's display
// fields, newest first. Admin-only; the authorization gate lives in the
// route middleware.
func (s *FeedbackService) ListAll() ([]dto.FeedbackEntry, error) {
	var rows []models.Feedback
	if err := s.db.Preload("User").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	entries := make([]dto.FeedbackEntry, 0, len(rows))
	for _, f := range rows {
		entries = append(entries, dto.FeedbackEntry{
			ID:           f.ID,
			Rating:       f.Rating,
			Liked:        f.Liked,
			Improvements: f.Improvements,
			CreatedAt:    f.CreatedAt,
			UpdatedAt:    f.UpdatedAt,
			User: dto.UserResponse{
				ID:         f.User.ID,
				Name:       f.User.Name,
				Username:   f.User.Username,
				TelegramID: f.User.TelegramID,
			},
		})
	}

	return entries, nil
}
