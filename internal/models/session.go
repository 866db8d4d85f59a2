package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment states a session can hold. Either can be set at any time by
// an explicit user action; neither is terminal.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// Session represents one therapy appointment between a patient and a
// therapist. FeeAmount is a snapshot of the patient's default fee at
// creation time; editing the patient later never changes it.
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PatientID   uint   `gorm:"not null;index" json:"patient_id"`
	TherapistID *uint  `gorm:"index" json:"therapist_id"`
	Date        string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	StartTime   string `json:"start_time"`                 // HH:MM, empty when unscheduled
	EndTime     string `json:"end_time"`

	Summary        string `json:"summary"`
	EvolutionLevel string `json:"evolution_level"`
	EvolutionNotes string `json:"evolution_notes"`
	TherapyPlan    string `json:"therapy_plan"`

	FeeAmount     float64 `gorm:"default:0" json:"fee_amount"`
	PaymentStatus string  `gorm:"default:Pending;index" json:"payment_status"`

	// Relationships
	Patient   Patient    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`
	Therapist *Therapist `json:"therapist,omitempty"`
}
