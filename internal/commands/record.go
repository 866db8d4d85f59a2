package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/db"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage clinical records",
	Long:  "Each patient has one clinical record, created empty the first time it is opened.",
}

var recordShowCmd = &cobra.Command{
	Use:   "show [patient-id]",
	Short: "Show a patient's clinical record",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}

		record, err := db.GetOrCreateRecord(patientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Clinical record #%d (patient #%d)\n", record.ID, record.PatientID)
		fmt.Printf("  Complaint:  %s\n", record.Complaint)
		fmt.Printf("  History:    %s\n", record.History)
		fmt.Printf("  Anamnesis:  %s\n", record.Anamnesis)
		fmt.Printf("  Notes:      %s\n", record.Notes)
	}),
}

var recordEditCmd = &cobra.Command{
	Use:   "edit [patient-id]",
	Short: "Rewrite a patient's clinical record",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}

		record, err := db.GetOrCreateRecord(patientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		complaint := flagOrCurrent(cmd, "complaint", record.Complaint)
		history := flagOrCurrent(cmd, "history", record.History)
		anamnesis := flagOrCurrent(cmd, "anamnesis", record.Anamnesis)
		notes := flagOrCurrent(cmd, "notes", record.Notes)

		if err := db.UpdateRecord(record.ID, complaint, history, anamnesis, notes); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Updated clinical record for patient #%d\n", patientID)
	}),
}

// flagOrCurrent keeps the stored value for flags the user did not set
func flagOrCurrent(cmd *cobra.Command, name, current string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return current
}

func init() {
	recordEditCmd.Flags().String("complaint", "", "Main complaint")
	recordEditCmd.Flags().String("history", "", "Relevant medical history")
	recordEditCmd.Flags().String("anamnesis", "", "Anamnesis")
	recordEditCmd.Flags().String("notes", "", "Additional notes")

	recordCmd.AddCommand(recordShowCmd)
	recordCmd.AddCommand(recordEditCmd)
}
