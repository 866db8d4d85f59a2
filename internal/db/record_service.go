package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/models"
)

// GetOrCreateRecord returns a patient's clinical record, creating an
// empty one on first access.
func GetOrCreateRecord(patientID uint) (*models.ClinicalRecord, error) {
	if _, err := GetPatientByID(patientID); err != nil {
		return nil, err
	}

	var record models.ClinicalRecord
	err := DB.Where("patient_id = ?", patientID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record = models.ClinicalRecord{PatientID: patientID}
	if err := DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord rewrites all free-text fields of a clinical record
func UpdateRecord(recordID uint, complaint, history, anamnesis, notes string) error {
	result := DB.Model(&models.ClinicalRecord{}).
		Where("id = ?", recordID).
		Updates(map[string]interface{}{
			"complaint": complaint,
			"history":   history,
			"anamnesis": anamnesis,
			"notes":     notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("clinical record #%d: %w", recordID, ErrNotFound)
	}
	return nil
}
