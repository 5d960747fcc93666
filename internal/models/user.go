package models

import (
	"time"
)

// User is created on first Telegram sign-in and refreshed with the latest
// profile fields on every subsequent sign-in. IDs are opaque strings issued
// by the auth service.
type User struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	FirstName  *string   `gorm:"size:255" json:"firstName"`
	LastName   *string   `gorm:"size:255" json:"lastName"`
	Username   *string   `gorm:"size:255" json:"username"`
	TelegramID *string   `gorm:"size:64;uniqueIndex" json:"telegramId"`
	Role       string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
