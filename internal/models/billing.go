package models

import "time"

// HealthPlan is an insurance/payer category a patient may belong to
type HealthPlan struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:HealthPlanID" json:"-"`
}

// Expense is an independent ledger entry, unrelated to sessions
type Expense struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Description string  `gorm:"not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Date        string  `gorm:"not null;index" json:"date"` // YYYY-MM-DD
}
