package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export record sets to spreadsheet files",
}

var exportPatientCmd = &cobra.Command{
	Use:   "patient [patient-id]",
	Short: "Export a patient's session history",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("patient_%d_sessions.xlsx", patientID)
		}

		patient, err := db.GetPatientByID(patientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		sessions, err := db.GetSessionsByPatient(patientID)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if err := export.WritePatientHistory(patient, sessions, out); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			return
		}
		fmt.Printf("✅ Exported %d sessions to %s\n", len(sessions), out)
	}),
}

var exportReceiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Export the paid sessions of a period",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		start, end, err := periodFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("receipts_%s_%s.xlsx", start, end)
		}

		rows, err := db.GetReceiptsByPeriod(start, end)
		if err != nil {
			fmt.Printf("Error fetching receipts: %v\n", err)
			return
		}

		if err := export.WriteReceipts(rows, out); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			return
		}
		fmt.Printf("✅ Exported %d receipts to %s\n", len(rows), out)
	}),
}

func init() {
	exportPatientCmd.Flags().StringP("out", "o", "", "Output file path")
	exportReceiptsCmd.Flags().StringP("out", "o", "", "Output file path")
	exportReceiptsCmd.Flags().String("from", "", "Period start (DD/MM/YYYY)")
	exportReceiptsCmd.Flags().String("to", "", "Period end (DD/MM/YYYY)")

	exportCmd.AddCommand(exportPatientCmd)
	exportCmd.AddCommand(exportReceiptsCmd)
}
