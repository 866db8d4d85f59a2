package export

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/models"
)

// WritePatientHistory exports one patient's session history to an xlsx
// file at path.
func WritePatientHistory(patient *models.Patient, sessions []models.Session, path string) error {
	headers := map[string]string{
		"A1": "Date",
		"B1": "Start",
		"C1": "End",
		"D1": "Therapist",
		"E1": "Evolution",
		"F1": "Summary",
		"G1": "Fee",
		"H1": "Payment",
	}
	file := excelize.NewFile()
	sheet := "Sessions"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i, session := range sessions {
		row := i + 2
		therapistName := ""
		if session.Therapist != nil {
			therapistName = session.Therapist.Name
		}
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), dates.ToDisplay(session.Date))
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), session.StartTime)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), session.EndTime)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), therapistName)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", row), session.EvolutionLevel)
		file.SetCellValue(sheet, fmt.Sprintf("F%v", row), session.Summary)
		file.SetCellValue(sheet, fmt.Sprintf("G%v", row), session.FeeAmount)
		file.SetCellValue(sheet, fmt.Sprintf("H%v", row), session.PaymentStatus)
	}

	writePatientSheet(file, patient)
	return file.SaveAs(path)
}

func writePatientSheet(file *excelize.File, patient *models.Patient) {
	sheet := "Patient"
	file.NewSheet(sheet)
	file.SetCellValue(sheet, "A1", "Name")
	file.SetCellValue(sheet, "B1", patient.Name)
	file.SetCellValue(sheet, "A2", "Birth date")
	file.SetCellValue(sheet, "B2", dates.ToDisplay(patient.BirthDate))
	file.SetCellValue(sheet, "A3", "Guardian")
	file.SetCellValue(sheet, "B3", patient.GuardianName)
	if patient.HealthPlan != nil {
		file.SetCellValue(sheet, "A4", "Health plan")
		file.SetCellValue(sheet, "B4", patient.HealthPlan.Name)
	}
}

// WriteReceipts exports the paid sessions of a period to an xlsx file
// at path.
func WriteReceipts(rows []db.ReceiptRow, path string) error {
	headers := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"C1": "Therapist",
		"D1": "Amount",
	}
	file := excelize.NewFile()
	sheet := "Receipts"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	total := 0.0
	for i, receipt := range rows {
		rowNum := i + 2
		file.SetCellValue(sheet, fmt.Sprintf("A%v", rowNum), dates.ToDisplay(receipt.Date))
		file.SetCellValue(sheet, fmt.Sprintf("B%v", rowNum), receipt.PatientName)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", rowNum), receipt.TherapistName)
		file.SetCellValue(sheet, fmt.Sprintf("D%v", rowNum), receipt.Amount)
		total += receipt.Amount
	}

	totalRow := len(rows) + 2
	file.SetCellValue(sheet, fmt.Sprintf("C%v", totalRow), "TOTAL")
	file.SetCellValue(sheet, fmt.Sprintf("D%v", totalRow), total)
	return file.SaveAs(path)
}
