package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/models"
)

// GetHealthPlans lists all plans ordered by name
func GetHealthPlans() ([]models.HealthPlan, error) {
	var plans []models.HealthPlan
	err := DB.Order("name ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// CreateHealthPlan adds a plan. Names are unique.
func CreateHealthPlan(name string) (*models.HealthPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("health plan name is required")
	}

	var existing models.HealthPlan
	err := DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("health plan %q: %w", name, ErrDuplicate)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan := models.HealthPlan{Name: name}
	if err := DB.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteHealthPlan removes a plan unless any patient still references it
func DeleteHealthPlan(id uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var plan models.HealthPlan
		if err := tx.First(&plan, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("health plan #%d: %w", id, ErrNotFound)
			}
			return err
		}

		var patientCount int64
		if err := tx.Model(&models.Patient{}).
			Where("health_plan_id = ?", id).
			Count(&patientCount).Error; err != nil {
			return err
		}
		if patientCount > 0 {
			return fmt.Errorf("health plan %q is assigned to %d patients: %w", plan.Name, patientCount, ErrInUse)
		}

		return tx.Delete(&plan).Error
	})
}
