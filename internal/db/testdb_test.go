package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvcarvalho/clinigo/internal/models"
)

// setupTestDB points the package at a throwaway database file, running
// the full migration and seeding path every test exercises in
// production.
func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clinigo_test.db")
	require.NoError(t, Initialize(path))
	t.Cleanup(func() {
		_ = Close()
	})
}

func newTestPatient(t *testing.T, name string, fee float64) *models.Patient {
	t.Helper()
	patient, err := CreatePatient(PatientRequest{
		Name:         name,
		BirthDate:    "2015-06-20",
		GuardianName: "Guardian of " + name,
		DefaultFee:   fee,
	})
	require.NoError(t, err)
	return patient
}

func newTestTherapist(t *testing.T, name string) *models.Therapist {
	t.Helper()
	therapist, err := CreateTherapist(name, "Speech therapy", "555-0000")
	require.NoError(t, err)
	return therapist
}

func bookTestSession(t *testing.T, patientID, therapistID uint, date, start, end string) *models.Session {
	t.Helper()
	session, err := CreateSession(SessionRequest{
		PatientID:   patientID,
		TherapistID: &therapistID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
	})
	require.NoError(t, err)
	return session
}
