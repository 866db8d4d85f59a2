package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/models"
)

// CreateTherapist registers a new therapist
func CreateTherapist(name, specialty, contact string) (*models.Therapist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("therapist name is required")
	}
	therapist := models.Therapist{
		Name:      strings.TrimSpace(name),
		Specialty: strings.TrimSpace(specialty),
		Contact:   strings.TrimSpace(contact),
	}
	if err := DB.Create(&therapist).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}

// UpdateTherapist rewrites a therapist's registration data
func UpdateTherapist(id uint, name, specialty, contact string) (*models.Therapist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("therapist name is required")
	}
	therapist, err := GetTherapistByID(id)
	if err != nil {
		return nil, err
	}
	therapist.Name = strings.TrimSpace(name)
	therapist.Specialty = strings.TrimSpace(specialty)
	therapist.Contact = strings.TrimSpace(contact)
	if err := DB.Save(therapist).Error; err != nil {
		return nil, err
	}
	return therapist, nil
}

// GetTherapistByID retrieves one therapist
func GetTherapistByID(id uint) (*models.Therapist, error) {
	var therapist models.Therapist
	err := DB.First(&therapist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("therapist #%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &therapist, nil
}

// GetTherapists lists all therapists ordered by name
func GetTherapists() ([]models.Therapist, error) {
	var therapists []models.Therapist
	err := DB.Order("name ASC").Find(&therapists).Error
	if err != nil {
		return nil, err
	}
	return therapists, nil
}

// DeleteTherapist removes a therapist. Blocked while any session still
// references them; availability slots go with the therapist.
func DeleteTherapist(id uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var therapist models.Therapist
		if err := tx.First(&therapist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("therapist #%d: %w", id, ErrNotFound)
			}
			return err
		}

		var sessionCount int64
		if err := tx.Model(&models.Session{}).
			Where("therapist_id = ?", id).
			Count(&sessionCount).Error; err != nil {
			return err
		}
		if sessionCount > 0 {
			return fmt.Errorf("therapist #%d has %d sessions: %w", id, sessionCount, ErrInUse)
		}

		if err := tx.Where("therapist_id = ?", id).Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&therapist).Error
	})
}
