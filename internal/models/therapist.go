package models

import (
	"time"

	"gorm.io/gorm"
)

// Therapist represents a professional sessions are booked with
type Therapist struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `gorm:"not null" json:"name"`
	Specialty string `json:"specialty"`
	Contact   string `json:"contact"`

	// Relationships
	Sessions     []Session          `gorm:"foreignKey:TherapistID" json:"sessions,omitempty"`
	Availability []AvailabilitySlot `gorm:"foreignKey:TherapistID" json:"availability,omitempty"`
}

// AvailabilitySlot is a declared window a therapist is open to being
// booked. Informational only: bookings are never validated against it.
type AvailabilitySlot struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TherapistID uint   `gorm:"not null;index" json:"therapist_id"`
	Date        string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	StartTime   string `gorm:"not null" json:"start_time"` // HH:MM
	EndTime     string `gorm:"not null" json:"end_time"`   // HH:MM
}
