package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvcarvalho/clinigo/internal/models"
)

func TestPeriodTotalsAndBalance(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")

	inPaid := bookTestSession(t, patient.ID, therapist.ID, "2024-03-05", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(inPaid.ID, 100, models.PaymentPaid))
	bookTestSession(t, patient.ID, therapist.ID, "2024-03-10", "09:00", "10:00") // stays pending
	outPaid := bookTestSession(t, patient.ID, therapist.ID, "2024-04-01", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(outPaid.ID, 100, models.PaymentPaid))

	_, err := AddExpense("rent", 40, "2024-03-15")
	require.NoError(t, err)
	_, err = AddExpense("supplies", 10, "2024-05-01") // outside the window
	require.NoError(t, err)

	receipts, err := TotalReceipts("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 100.0, receipts)

	receivable, err := TotalReceivable("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 100.0, receivable)

	expenses, err := TotalExpenses("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 40.0, expenses)

	// pending amounts never enter the balance
	balance, err := Balance("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 60.0, balance)
}

func TestPeriodBoundsAreInclusive(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")

	first := bookTestSession(t, patient.ID, therapist.ID, "2024-03-01", "09:00", "10:00")
	last := bookTestSession(t, patient.ID, therapist.ID, "2024-03-31", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(first.ID, 100, models.PaymentPaid))
	require.NoError(t, UpdateSessionFinance(last.ID, 100, models.PaymentPaid))

	receipts, err := TotalReceipts("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 200.0, receipts)
}

func TestReceiptsByHealthPlan(t *testing.T) {
	setupTestDB(t)
	therapist := newTestTherapist(t, "Dr. Reis")

	plans, err := GetHealthPlans()
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	planA, planB := plans[0], plans[1]

	withPlanA, err := CreatePatient(PatientRequest{
		Name: "Ana", BirthDate: "2015-06-20", GuardianName: "G",
		HealthPlanID: &planA.ID, DefaultFee: 100,
	})
	require.NoError(t, err)
	withPlanB, err := CreatePatient(PatientRequest{
		Name: "Bia", BirthDate: "2015-06-20", GuardianName: "G",
		HealthPlanID: &planB.ID, DefaultFee: 50,
	})
	require.NoError(t, err)
	unplanned := newTestPatient(t, "Caio", 500)

	pay := func(patientID uint, date, start, end string) {
		session := bookTestSession(t, patientID, therapist.ID, date, start, end)
		require.NoError(t, UpdateSessionFinance(session.ID, session.FeeAmount, models.PaymentPaid))
	}
	pay(withPlanA.ID, "2024-03-05", "09:00", "10:00")
	pay(withPlanA.ID, "2024-03-06", "09:00", "10:00")
	pay(withPlanB.ID, "2024-03-05", "11:00", "12:00")
	pay(unplanned.ID, "2024-03-05", "14:00", "15:00")

	rows, err := GetReceiptsByHealthPlan("2024-03-01", "2024-03-31")
	require.NoError(t, err)

	// unplanned patients are dropped entirely, groups sort by total desc
	require.Len(t, rows, 2)
	assert.Equal(t, planA.Name, rows[0].PlanName)
	assert.Equal(t, 200.0, rows[0].Total)
	assert.Equal(t, planB.Name, rows[1].PlanName)
	assert.Equal(t, 50.0, rows[1].Total)
}

func TestPatientHasPending(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")

	pending, err := PatientHasPending(patient.ID)
	require.NoError(t, err)
	assert.False(t, pending)

	session := bookTestSession(t, patient.ID, therapist.ID, "2020-01-01", "09:00", "10:00")

	// a pending session flags the patient regardless of amount or date
	pending, err = PatientHasPending(patient.ID)
	require.NoError(t, err)
	assert.True(t, pending)

	require.NoError(t, UpdateSessionFinance(session.ID, 0, models.PaymentPaid))
	pending, err = PatientHasPending(patient.ID)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestGetReceiptsByPeriodRows(t *testing.T) {
	setupTestDB(t)
	patient := newTestPatient(t, "Paulo", 100)
	therapist := newTestTherapist(t, "Dr. Reis")
	session := bookTestSession(t, patient.ID, therapist.ID, "2024-03-05", "09:00", "10:00")
	require.NoError(t, UpdateSessionFinance(session.ID, 100, models.PaymentPaid))

	rows, err := GetReceiptsByPeriod("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paulo", rows[0].PatientName)
	assert.Equal(t, "Dr. Reis", rows[0].TherapistName)
	assert.Equal(t, 100.0, rows[0].Amount)
}
