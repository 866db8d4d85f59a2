package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// PatientRequest holds the data needed to register or update a patient.
// BirthDate is in storage form (YYYY-MM-DD).
type PatientRequest struct {
	Name          string
	BirthDate     string
	GuardianName  string
	GuardianPhone string
	HealthPlanID  *uint
	DefaultFee    float64
}

func (req PatientRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("patient name is required")
	}
	if strings.TrimSpace(req.GuardianName) == "" {
		return fmt.Errorf("guardian name is required")
	}
	if !dates.ValidStorage(req.BirthDate) {
		return fmt.Errorf("invalid birth date %q", req.BirthDate)
	}
	if req.DefaultFee < 0 {
		return fmt.Errorf("default session fee must not be negative")
	}
	return nil
}

// CreatePatient registers a new patient
func CreatePatient(req PatientRequest) (*models.Patient, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := checkHealthPlanRef(req.HealthPlanID); err != nil {
		return nil, err
	}

	patient := models.Patient{
		Name:          strings.TrimSpace(req.Name),
		BirthDate:     req.BirthDate,
		GuardianName:  strings.TrimSpace(req.GuardianName),
		GuardianPhone: strings.TrimSpace(req.GuardianPhone),
		HealthPlanID:  req.HealthPlanID,
		DefaultFee:    req.DefaultFee,
	}
	if err := DB.Create(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient rewrites a patient's registration data. Changing the
// default fee only affects sessions created afterwards; existing
// sessions keep their snapshotted amount.
func UpdatePatient(patientID uint, req PatientRequest) (*models.Patient, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := checkHealthPlanRef(req.HealthPlanID); err != nil {
		return nil, err
	}

	patient, err := GetPatientByID(patientID)
	if err != nil {
		return nil, err
	}

	patient.Name = strings.TrimSpace(req.Name)
	patient.BirthDate = req.BirthDate
	patient.GuardianName = strings.TrimSpace(req.GuardianName)
	patient.GuardianPhone = strings.TrimSpace(req.GuardianPhone)
	patient.HealthPlanID = req.HealthPlanID
	patient.DefaultFee = req.DefaultFee
	if err := DB.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

func checkHealthPlanRef(planID *uint) error {
	if planID == nil {
		return nil
	}
	var plan models.HealthPlan
	if err := DB.First(&plan, *planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("health plan #%d: %w", *planID, ErrNotFound)
		}
		return err
	}
	return nil
}

// GetPatientByID retrieves a patient with their health plan
func GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := DB.Preload("HealthPlan").First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient #%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

// GetPatients lists all patients ordered by name
func GetPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := DB.Preload("HealthPlan").Order("name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// SearchPatientsByName lists patients whose name contains term,
// case-insensitive, ordered by name.
func SearchPatientsByName(term string) ([]models.Patient, error) {
	var patients []models.Patient
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	err := DB.Preload("HealthPlan").
		Where("lower(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// DeletePatient removes a patient together with their sessions and
// clinical record. One transaction: the cascade is all-or-nothing.
func DeletePatient(patientID uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, patientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("patient #%d: %w", patientID, ErrNotFound)
			}
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.ClinicalRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
}
