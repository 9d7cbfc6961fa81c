package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile is bound 1:1 to an external identity (the JWT subject).
// Profiles are created lazily on the first authenticated request.
type UserProfile struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ExternalID   string         `json:"external_id" gorm:"uniqueIndex;not null"`
	Name         string         `json:"name"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber  string         `json:"phone_number"`
	PasswordHash string         `json:"-" gorm:"column:password_hash"`
	IsAdmin      bool           `json:"is_admin" gorm:"default:false"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
