package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvcarvalho/clinigo/internal/models"
)

func TestOverlaps(t *testing.T) {
	// 09:00-10:00 against various neighbors, in minutes
	assert.True(t, Overlaps(540, 600, 570, 630))  // partial overlap
	assert.True(t, Overlaps(570, 630, 540, 600))  // symmetric
	assert.True(t, Overlaps(540, 600, 555, 585))  // contained
	assert.False(t, Overlaps(540, 600, 600, 660)) // touching endpoints
	assert.False(t, Overlaps(600, 660, 540, 600))
	assert.False(t, Overlaps(540, 600, 720, 780)) // disjoint
}

func TestConflictDetection(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Alice", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	bookTestSession(t, patient.ID, therapist.ID, "2024-01-10", "09:00", "10:00")

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		conflict, err := HasConflict(therapist.ID, "2024-01-10", "09:30", "10:30", 0)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("touching endpoints do not conflict", func(t *testing.T) {
		conflict, err := HasConflict(therapist.ID, "2024-01-10", "10:00", "11:00", 0)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("other therapist same slot does not conflict", func(t *testing.T) {
		other := newTestTherapist(t, "Dr. Souza")
		conflict, err := HasConflict(other.ID, "2024-01-10", "09:30", "10:30", 0)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("other date does not conflict", func(t *testing.T) {
		conflict, err := HasConflict(therapist.ID, "2024-01-11", "09:00", "10:00", 0)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("create rejects overlapping booking", func(t *testing.T) {
		_, err := CreateSession(SessionRequest{
			PatientID:   patient.ID,
			TherapistID: &therapist.ID,
			Date:        "2024-01-10",
			StartTime:   "09:30",
			EndTime:     "10:30",
		})
		assert.ErrorIs(t, err, ErrScheduleConflict)
	})
}

func TestEditExcludesOwnSlot(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Alice", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	session := bookTestSession(t, patient.ID, therapist.ID, "2024-01-10", "09:00", "10:00")

	// Re-saving the identical slot must never conflict with itself
	updated, err := UpdateSession(session.ID, SessionRequest{
		PatientID:   patient.ID,
		TherapistID: &therapist.ID,
		Date:        "2024-01-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Summary:     "rescheduled notes",
	})
	require.NoError(t, err)
	assert.Equal(t, "rescheduled notes", updated.Summary)

	// But moving onto another session's slot still fails
	bookTestSession(t, patient.ID, therapist.ID, "2024-01-10", "11:00", "12:00")
	_, err = UpdateSession(session.ID, SessionRequest{
		PatientID:   patient.ID,
		TherapistID: &therapist.ID,
		Date:        "2024-01-10",
		StartTime:   "11:30",
		EndTime:     "12:30",
	})
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestSessionValidation(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Alice", 100)
	therapist := newTestTherapist(t, "Dr. Reis")

	t.Run("start must precede end", func(t *testing.T) {
		_, err := CreateSession(SessionRequest{
			PatientID:   patient.ID,
			TherapistID: &therapist.ID,
			Date:        "2024-01-10",
			StartTime:   "10:00",
			EndTime:     "09:00",
		})
		assert.Error(t, err)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		_, err := CreateSession(SessionRequest{
			PatientID:   patient.ID,
			TherapistID: &therapist.ID,
			Date:        "2024-01-10",
			StartTime:   "9:00",
			EndTime:     "10:00",
		})
		assert.Error(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := CreateSession(SessionRequest{
			PatientID: patient.ID,
			Date:      "10/01/2024",
		})
		assert.Error(t, err)
	})

	t.Run("notes-only session without times is allowed", func(t *testing.T) {
		session, err := CreateSession(SessionRequest{
			PatientID: patient.ID,
			Date:      "2024-01-10",
			Summary:   "phone follow-up",
		})
		require.NoError(t, err)
		assert.Empty(t, session.StartTime)

		// and it occupies no slot
		conflict, err := HasConflict(therapist.ID, "2024-01-10", "00:00", "23:59", 0)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("unknown patient rejected", func(t *testing.T) {
		_, err := CreateSession(SessionRequest{PatientID: 9999, Date: "2024-01-10"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNoTherapistSkipsConflictCheck(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Alice", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	bookTestSession(t, patient.ID, therapist.ID, "2024-01-10", "09:00", "10:00")

	// a timed session with no therapist books over anyone's slot
	session, err := CreateSession(SessionRequest{
		PatientID: patient.ID,
		Date:      "2024-01-10",
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	require.NoError(t, err)
	assert.Nil(t, session.TherapistID)

	// and editing a session to drop its therapist skips the check too
	_, err = UpdateSession(session.ID, SessionRequest{
		PatientID: patient.ID,
		Date:      "2024-01-10",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.NoError(t, err)
}

func TestGetAllPendingSessions(t *testing.T) {
	setupTestDB(t)
	ana := newTestPatient(t, "Ana Clara", 100)
	pedro := newTestPatient(t, "Pedro", 80)
	therapist := newTestTherapist(t, "Dr. Reis")

	bookTestSession(t, pedro.ID, therapist.ID, "2024-02-02", "11:00", "12:00")
	bookTestSession(t, ana.ID, therapist.ID, "2024-02-02", "09:00", "10:00")
	bookTestSession(t, ana.ID, therapist.ID, "2024-02-01", "09:00", "10:00")
	paid := bookTestSession(t, ana.ID, therapist.ID, "2024-02-03", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(paid.ID, 100, models.PaymentPaid))

	t.Run("lists all patients, paid excluded", func(t *testing.T) {
		rows, err := GetAllPendingSessions("")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Ana Clara", rows[0].PatientName)
		assert.Equal(t, "2024-02-01", rows[0].Date)
		assert.Equal(t, "2024-02-02", rows[1].Date)
		assert.Equal(t, "Pedro", rows[2].PatientName)
		assert.Equal(t, 80.0, rows[2].FeeAmount)
	})

	t.Run("name filter is case-insensitive", func(t *testing.T) {
		rows, err := GetAllPendingSessions("ana")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, ana.ID, row.PatientID)
		}
	})

	t.Run("no match means empty", func(t *testing.T) {
		rows, err := GetAllPendingSessions("nobody")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestFeeSnapshot(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")

	first := bookTestSession(t, patient.ID, therapist.ID, "2024-02-01", "09:00", "10:00")
	assert.Equal(t, 100.0, first.FeeAmount)
	assert.Equal(t, models.PaymentPending, first.PaymentStatus)

	_, err := UpdatePatient(patient.ID, PatientRequest{
		Name:         patient.Name,
		BirthDate:    patient.BirthDate,
		GuardianName: patient.GuardianName,
		DefaultFee:   150,
	})
	require.NoError(t, err)

	// the earlier session keeps its snapshot, a new one picks up the change
	reloaded, err := GetSessionByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, reloaded.FeeAmount)

	second := bookTestSession(t, patient.ID, therapist.ID, "2024-02-02", "09:00", "10:00")
	assert.Equal(t, 150.0, second.FeeAmount)
}

func TestUpdateSessionFinance(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	session := bookTestSession(t, patient.ID, therapist.ID, "2024-02-01", "09:00", "10:00")

	require.NoError(t, UpdateSessionFinance(session.ID, 120, models.PaymentPaid))
	reloaded, err := GetSessionByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, reloaded.FeeAmount)
	assert.Equal(t, models.PaymentPaid, reloaded.PaymentStatus)

	// paid is not terminal: an explicit action reverts it
	require.NoError(t, UpdateSessionFinance(session.ID, 120, models.PaymentPending))
	reloaded, err = GetSessionByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)

	assert.Error(t, UpdateSessionFinance(session.ID, -1, models.PaymentPaid))
	assert.Error(t, UpdateSessionFinance(session.ID, 120, "Overdue"))
	assert.ErrorIs(t, UpdateSessionFinance(9999, 120, models.PaymentPaid), ErrNotFound)
}

func TestMarkAllSessionsPaid(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	other := newTestPatient(t, "Rita", 80)
	therapist := newTestTherapist(t, "Dr. Reis")

	bookTestSession(t, patient.ID, therapist.ID, "2024-02-01", "09:00", "10:00")
	bookTestSession(t, patient.ID, therapist.ID, "2024-02-02", "09:00", "10:00")
	paid := bookTestSession(t, patient.ID, therapist.ID, "2024-02-03", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(paid.ID, 100, models.PaymentPaid))
	otherSession := bookTestSession(t, other.ID, therapist.ID, "2024-02-01", "11:00", "12:00")

	updated, err := MarkAllSessionsPaid(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	sessions, err := GetSessionsByPatient(patient.ID)
	require.NoError(t, err)
	for _, session := range sessions {
		assert.Equal(t, models.PaymentPaid, session.PaymentStatus)
	}

	// the other patient's set is untouched
	reloaded, err := GetSessionByID(otherSession.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, reloaded.PaymentStatus)

	// idempotent once nothing is pending
	updated, err = MarkAllSessionsPaid(patient.ID)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestSessionQueries(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	bookTestSession(t, patient.ID, therapist.ID, "2024-02-01", "09:00", "10:00")
	bookTestSession(t, patient.ID, therapist.ID, "2024-02-03", "09:00", "10:00")
	bookTestSession(t, patient.ID, therapist.ID, "2024-02-01", "11:00", "12:00")

	t.Run("per patient newest first", func(t *testing.T) {
		sessions, err := GetSessionsByPatient(patient.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, "2024-02-03", sessions[0].Date)
		assert.Equal(t, "11:00", sessions[1].StartTime)
	})

	t.Run("day agenda ordered by start", func(t *testing.T) {
		sessions, err := GetSessionsByDate("2024-02-01")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "09:00", sessions[0].StartTime)
		assert.Equal(t, "Paulo", sessions[0].Patient.Name)
	})

	t.Run("distinct session dates", func(t *testing.T) {
		days, err := SessionDates()
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-02-01", "2024-02-03"}, days)
	})
}
