package models

import (
	"time"
)

// Project is a user-proposed entry on the voting board. VoteCount is a
// denormalized aggregate of the votes table; it is only ever mutated with an
// atomic SQL increment inside the same transaction that inserts the vote row.
type Project struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	GroupName   *string   `gorm:"size:255" json:"groupName"`
	VoteCount   int       `gorm:"not null;default:0" json:"voteCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Vote records that a user voted for a project. The composite unique index is
// the authoritative duplicate-vote guard; the service-level existence check is
// a fast path only.
type Vote struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_votes_user_project" json:"userId"`
	ProjectID string    `gorm:"size:64;not null;uniqueIndex:idx_votes_user_project" json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Project   Project   `gorm:"foreignKey:ProjectID" json:"-"`
}
