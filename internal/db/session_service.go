package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// SessionRequest holds the data needed to create or update a session.
// Date is in storage form (YYYY-MM-DD); times are HH:MM or empty for a
// notes-only entry that occupies no slot.
type SessionRequest struct {
	PatientID      uint
	TherapistID    *uint
	Date           string
	StartTime      string
	EndTime        string
	Summary        string
	EvolutionLevel string
	EvolutionNotes string
	TherapyPlan    string
}

func (req SessionRequest) validate() error {
	if !dates.ValidStorage(req.Date) {
		return fmt.Errorf("invalid session date %q", req.Date)
	}
	if req.StartTime == "" && req.EndTime == "" {
		return nil
	}
	return dates.ValidateClockRange(req.StartTime, req.EndTime)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd), in minutes since midnight, overlap. Touching
// endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// HasConflict reports whether the therapist already has a session on
// date overlapping [start, end). excludeID ignores one session, so an
// edit never conflicts with itself. Read-only; callers abort the write.
func HasConflict(therapistID uint, date, start, end string, excludeID uint) (bool, error) {
	return hasConflict(DB, therapistID, date, start, end, excludeID)
}

func hasConflict(tx *gorm.DB, therapistID uint, date, start, end string, excludeID uint) (bool, error) {
	// Fixed-width HH:MM strings compare in time order, so the overlap
	// rule (StartA < EndB AND EndA > StartB) runs directly in SQL.
	// Sessions without times never match: '' sorts before any clock.
	query := tx.Model(&models.Session{}).
		Where("therapist_id = ? AND date = ?", therapistID, date).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateSession books a new session. The fee is snapshotted from the
// patient's current default fee; the conflict check and the insert run
// in one transaction so no booking can slip in between them.
func CreateSession(req SessionRequest) (*models.Session, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var session models.Session
	err := DB.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, req.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("patient #%d: %w", req.PatientID, ErrNotFound)
			}
			return err
		}

		if err := checkSlot(tx, req, 0); err != nil {
			return err
		}

		session = models.Session{
			PatientID:      req.PatientID,
			TherapistID:    req.TherapistID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Summary:        req.Summary,
			EvolutionLevel: req.EvolutionLevel,
			EvolutionNotes: req.EvolutionNotes,
			TherapyPlan:    req.TherapyPlan,
			FeeAmount:      patient.DefaultFee,
			PaymentStatus:  models.PaymentPending,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateSession rewrites the scheduling and clinical fields of an
// existing session. Fee and payment status are left untouched; those
// change only through UpdateSessionFinance.
func UpdateSession(sessionID uint, req SessionRequest) (*models.Session, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var session models.Session
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
			}
			return err
		}

		if err := checkSlot(tx, req, sessionID); err != nil {
			return err
		}

		session.TherapistID = req.TherapistID
		session.Date = req.Date
		session.StartTime = req.StartTime
		session.EndTime = req.EndTime
		session.Summary = req.Summary
		session.EvolutionLevel = req.EvolutionLevel
		session.EvolutionNotes = req.EvolutionNotes
		session.TherapyPlan = req.TherapyPlan
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// checkSlot runs the conflict check when the request occupies a slot.
// Sessions without a therapist or without times cannot conflict.
// Declared availability is deliberately not consulted: the clinic may
// book outside and beyond it.
func checkSlot(tx *gorm.DB, req SessionRequest, excludeID uint) error {
	if req.TherapistID == nil || req.StartTime == "" {
		return nil
	}
	conflict, err := hasConflict(tx, *req.TherapistID, req.Date, req.StartTime, req.EndTime, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrScheduleConflict
	}
	return nil
}

// UpdateSessionFinance overwrites the fee amount and payment status of
// one session together. Callers always pass the full intended amount;
// there is no partial update.
func UpdateSessionFinance(sessionID uint, amount float64, status string) error {
	if amount < 0 {
		return fmt.Errorf("fee amount must not be negative")
	}
	if status != models.PaymentPending && status != models.PaymentPaid {
		return fmt.Errorf("unknown payment status %q", status)
	}

	result := DB.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"fee_amount":     amount,
			"payment_status": status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
	}
	return nil
}

// MarkAllSessionsPaid transitions every pending session of one patient
// to paid. Single statement, so the set moves all-or-nothing.
func MarkAllSessionsPaid(patientID uint) (int64, error) {
	var updated int64
	err := DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Session{}).
			Where("patient_id = ? AND payment_status = ?", patientID, models.PaymentPending).
			Update("payment_status", models.PaymentPaid)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	return updated, err
}

// GetSessionByID retrieves one session with its patient and therapist
func GetSessionByID(id uint) (*models.Session, error) {
	var session models.Session
	err := DB.Preload("Patient").Preload("Therapist").First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session #%d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &session, nil
}

// GetSessionsByPatient lists a patient's sessions, most recent first
func GetSessionsByPatient(patientID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Preload("Therapist").
		Where("patient_id = ?", patientID).
		Order("date DESC, start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetPendingSessionsByPatient lists a patient's unpaid sessions
func GetPendingSessionsByPatient(patientID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Where("patient_id = ? AND payment_status = ?", patientID, models.PaymentPending).
		Order("date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// PendingSessionRow is one unpaid session in the clinic-wide payment
// control view.
type PendingSessionRow struct {
	SessionID   uint
	Date        string
	StartTime   string
	PatientID   uint
	PatientName string
	FeeAmount   float64
}

// GetAllPendingSessions lists every pending session in the clinic with
// its patient's name, grouped by patient and oldest first. A non-empty
// term filters by case-insensitive patient-name substring.
func GetAllPendingSessions(term string) ([]PendingSessionRow, error) {
	query := DB.Model(&models.Session{}).
		Select("sessions.id AS session_id, sessions.date, sessions.start_time, patients.id AS patient_id, patients.name AS patient_name, sessions.fee_amount").
		Joins("JOIN patients ON patients.id = sessions.patient_id AND patients.deleted_at IS NULL").
		Where("sessions.payment_status = ?", models.PaymentPending).
		Order("patients.name ASC, sessions.date ASC, sessions.start_time ASC")
	if term != "" {
		query = query.Where("lower(patients.name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var rows []PendingSessionRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSessionsByDate returns the day's agenda, ordered by start time
func GetSessionsByDate(date string) ([]models.Session, error) {
	var sessions []models.Session
	err := DB.Preload("Patient").Preload("Therapist").
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionDates returns the distinct storage dates that have sessions,
// used to mark the calendar.
func SessionDates() ([]string, error) {
	var days []string
	err := DB.Model(&models.Session{}).
		Distinct("date").
		Order("date ASC").
		Pluck("date", &days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

// DeleteSession removes one session
func DeleteSession(id uint) error {
	result := DB.Delete(&models.Session{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session #%d: %w", id, ErrNotFound)
	}
	return nil
}
