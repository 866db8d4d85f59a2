package models

import (
	"time"

	"gorm.io/gorm"
)

// Patient represents one patient of the clinic
type Patient struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string  `gorm:"not null" json:"name"`
	BirthDate     string  `gorm:"not null" json:"birth_date"` // YYYY-MM-DD
	GuardianName  string  `gorm:"not null" json:"guardian_name"`
	GuardianPhone string  `json:"guardian_phone"`
	HealthPlanID  *uint   `json:"health_plan_id"`
	DefaultFee    float64 `gorm:"default:0" json:"default_fee"` // copied onto each new session

	// Relationships
	HealthPlan *HealthPlan     `json:"health_plan,omitempty"`
	Sessions   []Session       `gorm:"foreignKey:PatientID" json:"sessions,omitempty"`
	Record     *ClinicalRecord `gorm:"foreignKey:PatientID" json:"record,omitempty"`
}

// ClinicalRecord is the one-per-patient clinical file, created lazily
// the first time it is opened.
type ClinicalRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PatientID uint   `gorm:"not null;uniqueIndex" json:"patient_id"`
	Complaint string `json:"complaint"`
	History   string `json:"history"`
	Anamnesis string `json:"anamnesis"`
	Notes     string `json:"notes"`
}
