package db

import (
	"fmt"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// AddAvailability declares a window a therapist is open for booking.
// Slots are informational: they are not checked against each other or
// against sessions.
func AddAvailability(therapistID uint, date, start, end string) (*models.AvailabilitySlot, error) {
	if _, err := GetTherapistByID(therapistID); err != nil {
		return nil, err
	}
	if !dates.ValidStorage(date) {
		return nil, fmt.Errorf("invalid availability date %q", date)
	}
	if err := dates.ValidateClockRange(start, end); err != nil {
		return nil, err
	}

	slot := models.AvailabilitySlot{
		TherapistID: therapistID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
	}
	if err := DB.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetAvailabilityByDate lists one therapist's slots for a date
func GetAvailabilityByDate(therapistID uint, date string) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := DB.Where("therapist_id = ? AND date = ?", therapistID, date).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// GetAvailableDatesInMonth returns the distinct dates a therapist has
// declared availability on in one month. Works because storage dates
// are YYYY-MM-DD.
func GetAvailableDatesInMonth(therapistID uint, year, month int) ([]string, error) {
	var days []string
	err := DB.Model(&models.AvailabilitySlot{}).
		Where("therapist_id = ? AND date LIKE ?", therapistID, fmt.Sprintf("%04d-%02d-%%", year, month)).
		Distinct("date").
		Order("date ASC").
		Pluck("date", &days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

// DayAvailability pairs a slot with its therapist's name for the
// all-therapists agenda view.
type DayAvailability struct {
	TherapistName string
	StartTime     string
	EndTime       string
}

// GetDayAvailability lists every therapist's slots for one date
func GetDayAvailability(date string) ([]DayAvailability, error) {
	var rows []DayAvailability
	err := DB.Model(&models.AvailabilitySlot{}).
		Select("therapists.name AS therapist_name, availability_slots.start_time, availability_slots.end_time").
		Joins("JOIN therapists ON therapists.id = availability_slots.therapist_id AND therapists.deleted_at IS NULL").
		Where("availability_slots.date = ?", date).
		Order("therapists.name ASC, availability_slots.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAvailability removes one slot
func DeleteAvailability(id uint) error {
	result := DB.Delete(&models.AvailabilitySlot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("availability slot #%d: %w", id, ErrNotFound)
	}
	return nil
}
