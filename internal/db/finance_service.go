package db

import (
	"github.com/mvcarvalho/clinigo/internal/models"
)

// Money totals are derived from session and expense rows over a closed
// date interval [start, end]. Storage dates sort chronologically, so
// BETWEEN on the strings is a correct range query.

// TotalReceipts sums paid session fees inside the period
func TotalReceipts(start, end string) (float64, error) {
	return sumSessions(models.PaymentPaid, start, end)
}

// TotalReceivable sums pending session fees inside the period. It is
// informational only and never enters the balance.
func TotalReceivable(start, end string) (float64, error) {
	return sumSessions(models.PaymentPending, start, end)
}

func sumSessions(status, start, end string) (float64, error) {
	var total float64
	err := DB.Model(&models.Session{}).
		Where("payment_status = ? AND date BETWEEN ? AND ?", status, start, end).
		Select("COALESCE(SUM(fee_amount), 0)").
		Scan(&total).Error
	return total, err
}

// TotalExpenses sums expense amounts inside the period
func TotalExpenses(start, end string) (float64, error) {
	var total float64
	err := DB.Model(&models.Expense{}).
		Where("date BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// Balance is realized receipts minus expenses. Receivable amounts are
// excluded: only money that actually came in counts.
func Balance(start, end string) (float64, error) {
	receipts, err := TotalReceipts(start, end)
	if err != nil {
		return 0, err
	}
	expenses, err := TotalExpenses(start, end)
	if err != nil {
		return 0, err
	}
	return receipts - expenses, nil
}

// ReceiptRow is one paid session in the cash-flow report
type ReceiptRow struct {
	Date          string
	PatientName   string
	TherapistName string
	Amount        float64
}

// GetReceiptsByPeriod lists paid sessions inside the period with
// patient and therapist names, newest first.
func GetReceiptsByPeriod(start, end string) ([]ReceiptRow, error) {
	var rows []ReceiptRow
	err := DB.Model(&models.Session{}).
		Select("sessions.date, patients.name AS patient_name, therapists.name AS therapist_name, sessions.fee_amount AS amount").
		Joins("JOIN patients ON patients.id = sessions.patient_id AND patients.deleted_at IS NULL").
		Joins("LEFT JOIN therapists ON therapists.id = sessions.therapist_id").
		Where("sessions.payment_status = ? AND sessions.date BETWEEN ? AND ?", models.PaymentPaid, start, end).
		Order("sessions.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PlanRevenue is the paid total attributed to one health plan
type PlanRevenue struct {
	PlanName string
	Total    float64
}

// GetReceiptsByHealthPlan groups paid session amounts by the owning
// patient's health plan, highest total first. Patients without a plan
// are dropped by the inner join and contribute to no group.
func GetReceiptsByHealthPlan(start, end string) ([]PlanRevenue, error) {
	var rows []PlanRevenue
	err := DB.Model(&models.Session{}).
		Select("health_plans.name AS plan_name, SUM(sessions.fee_amount) AS total").
		Joins("JOIN patients ON patients.id = sessions.patient_id AND patients.deleted_at IS NULL").
		Joins("JOIN health_plans ON health_plans.id = patients.health_plan_id").
		Where("sessions.payment_status = ? AND sessions.date BETWEEN ? AND ?", models.PaymentPaid, start, end).
		Group("health_plans.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// PatientHasPending reports whether the patient owns at least one
// pending session, regardless of amount or date. Drives list
// highlighting; it is an existence check, not a balance.
func PatientHasPending(patientID uint) (bool, error) {
	var count int64
	err := DB.Model(&models.Session{}).
		Where("patient_id = ? AND payment_status = ?", patientID, models.PaymentPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
