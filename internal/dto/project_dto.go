package dto

import (
	"time"

	"github.com/showcaseapp/showcase-backend/internal/models"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GroupName   string `json:"groupName"`
}

type ProjectResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
}

type ProjectListResponse struct {
	Success  bool             `json:"success"`
	Projects []models.Project `json:"projects"`
}

// ProjectVoteStatus is a project annotated with whether the viewer already
// voted for it.
type ProjectVoteStatus struct {
	models.Project
	HasVoted bool `json:"hasVoted"`
}

type VotingStatusResponse struct {
	Success        bool                `json:"success"`
	Projects       []ProjectVoteStatus `json:"projects"`
	UserVoteCount  int                 `json:"userVoteCount"`
	MaxVotes       int                 `json:"maxVotes"`
	RemainingVotes int                 `json:"remainingVotes"`
}

type VoteResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
	Message string         `json:"message"`
}

type CreateFeedbackRequest struct {
	Rating       int    `json:"rating"`
	Liked        string `json:"liked"`
	Improvements string `json:"improvements"`
}

type FeedbackResponse struct {
	Success  bool            `json:"success"`
	Feedback models.Feedback `json:"feedback"`
}

// FeedbackEntry joins a feedback row with its submitter's display fields for
// the admin listing.
type FeedbackEntry struct {
	ID           string       `json:"id"`
	Rating       int          `json:"rating"`
	Liked        *string      `json:"liked"`
	Improvements *string      `json:"improvements"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	User         UserResponse `json:"user"`
}

type FeedbackListResponse struct {
	Success   bool            `json:"success"`
	Feedbacks []FeedbackEntry `json:"feedbacks"`
	Count     int             `json:"count"`
}
