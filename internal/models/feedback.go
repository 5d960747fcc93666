package models

import (
	"time"
)

// Feedback holds a 1-5 rating with two optional free-text comments. Empty
// comments are stored as NULL, never as empty strings.
type Feedback struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	UserID       string    `gorm:"size:64;not null;index" json:"userId"`
	Rating       int       `gorm:"not null" json:"rating"`
	Liked        *string   `gorm:"type:text" json:"liked"`
	Improvements *string   `gorm:"type:text" json:"improvements"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
}

func (Feedback) TableName() string {
	return "feedback"
}
