package models

import "time"

// Access levels for application users
const (
	AccessAdmin     = "admin"
	AccessTherapist = "therapist"
)

// User is a login account for the application
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	AccessLevel  string `gorm:"not null;default:therapist" json:"access_level"`
}
