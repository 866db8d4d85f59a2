package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/models"
	"github.com/mvcarvalho/clinigo/internal/tui"
)

var pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorPendingText))

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patients",
}

var patientAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new patient",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		req, err := patientRequestFromFlags(cmd, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		patient, err := db.CreatePatient(*req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Registered patient #%d: %s\n", patient.ID, patient.Name)
	}),
}

var patientEditCmd = &cobra.Command{
	Use:   "edit [patient-id] [name]",
	Short: "Update a patient's registration",
	Long: `Update a patient's registration data. Changing the default fee only
affects sessions created afterwards; existing sessions keep the fee
they were booked with.`,
	Args: cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}
		req, err := patientRequestFromFlags(cmd, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		patient, err := db.UpdatePatient(patientID, *req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Updated patient #%d: %s\n", patient.ID, patient.Name)
	}),
}

var patientListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List patients",
	Long:  "List patients ordered by name. Patients with pending session payments are highlighted.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		term, _ := cmd.Flags().GetString("search")

		var patients []models.Patient
		var err error
		if term != "" {
			patients, err = db.SearchPatientsByName(term)
		} else {
			patients, err = db.GetPatients()
		}
		if err != nil {
			fmt.Printf("Error fetching patients: %v\n", err)
			return
		}
		if len(patients) == 0 {
			fmt.Println("No patients found. Use 'clinigo patient add \"name\"' to register one.")
			return
		}

		fmt.Printf("%-4s %-30s %-4s %-22s %-20s %8s\n", "ID", "NAME", "AGE", "GUARDIAN", "PLAN", "FEE")
		for _, patient := range patients {
			age, ageErr := dates.Age(patient.BirthDate, time.Now())
			ageStr := "?"
			if ageErr == nil {
				ageStr = strconv.Itoa(age)
			}
			planName := "-"
			if patient.HealthPlan != nil {
				planName = patient.HealthPlan.Name
			}
			line := fmt.Sprintf("%-4d %-30s %-4s %-22s %-20s %8.2f",
				patient.ID, truncate(patient.Name, 28), ageStr,
				truncate(patient.GuardianName, 20), truncate(planName, 18), patient.DefaultFee)

			pending, pErr := db.PatientHasPending(patient.ID)
			if pErr == nil && pending {
				line = pendingStyle.Render(line + "  (pending)")
			}
			fmt.Println(line)
		}
	}),
}

var patientRemoveCmd = &cobra.Command{
	Use:   "rm [patient-id]",
	Short: "Delete a patient and all their sessions and clinical record",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}

		if err := db.DeletePatient(patientID); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				fmt.Printf("Error: patient #%d not found\n", patientID)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted patient #%d with their sessions and clinical record\n", patientID)
	}),
}

// patientRequestFromFlags builds the service request from the shared
// add/edit flag set, converting the display date and parsing the fee.
func patientRequestFromFlags(cmd *cobra.Command, name string) (*db.PatientRequest, error) {
	birthDisplay, _ := cmd.Flags().GetString("birth")
	guardian, _ := cmd.Flags().GetString("guardian")
	phone, _ := cmd.Flags().GetString("phone")
	feeStr, _ := cmd.Flags().GetString("fee")
	planID, _ := cmd.Flags().GetUint("plan")

	birthStorage, err := dates.ToStorage(birthDisplay)
	if err != nil {
		return nil, err
	}

	fee := 0.0
	if feeStr != "" {
		fee, err = strconv.ParseFloat(feeStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid fee %q: must be a number", feeStr)
		}
	}

	var planRef *uint
	if planID != 0 {
		planRef = &planID
	}

	return &db.PatientRequest{
		Name:          name,
		BirthDate:     birthStorage,
		GuardianName:  guardian,
		GuardianPhone: phone,
		HealthPlanID:  planRef,
		DefaultFee:    fee,
	}, nil
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// truncate shortens s to at most max characters. Counts runes so
// accented names are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}

func init() {
	for _, c := range []*cobra.Command{patientAddCmd, patientEditCmd} {
		c.Flags().StringP("birth", "b", "", "Birth date (DD/MM/YYYY)")
		c.Flags().StringP("guardian", "g", "", "Guardian name")
		c.Flags().StringP("phone", "t", "", "Guardian phone")
		c.Flags().StringP("fee", "f", "", "Default session fee")
		c.Flags().UintP("plan", "p", 0, "Health plan ID (0 for none)")
	}
	patientListCmd.Flags().StringP("search", "s", "", "Filter by name substring")

	patientCmd.AddCommand(patientAddCmd)
	patientCmd.AddCommand(patientEditCmd)
	patientCmd.AddCommand(patientListCmd)
	patientCmd.AddCommand(patientRemoveCmd)
}
