package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/models"
	"github.com/mvcarvalho/clinigo/internal/tui"
)

var paidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorPaidText))

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage therapy sessions",
}

var sessionBookCmd = &cobra.Command{
	Use:   "book [patient-id]",
	Short: "Book a new session",
	Long: `Book a session for a patient. The fee is copied from the patient's
current default fee. The therapist's schedule is checked for overlaps
before anything is written.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}
		req, err := sessionRequestFromFlags(cmd, patientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.CreateSession(*req)
		if err != nil {
			if errors.Is(err, db.ErrScheduleConflict) {
				fmt.Println("⚠️  The therapist already has a session in this time slot.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Booked session #%d on %s %s-%s (fee %.2f, %s)\n",
			session.ID, dates.ToDisplay(session.Date), session.StartTime,
			session.EndTime, session.FeeAmount, session.PaymentStatus)
	}),
}

var sessionEditCmd = &cobra.Command{
	Use:   "edit [session-id]",
	Short: "Reschedule or rewrite a session",
	Long: `Rewrite a session's schedule and clinical notes. The session's own
slot is ignored by the conflict check, so re-saving the same time is
always accepted. Fee and payment status are not touched; use
'clinigo session pay' for those.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		existing, err := db.GetSessionByID(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		req, err := sessionRequestFromFlags(cmd, existing.PatientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.UpdateSession(sessionID, *req)
		if err != nil {
			if errors.Is(err, db.ErrScheduleConflict) {
				fmt.Println("⚠️  The therapist already has a session in this time slot.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Updated session #%d on %s %s-%s\n",
			session.ID, dates.ToDisplay(session.Date), session.StartTime, session.EndTime)
	}),
}

var sessionListCmd = &cobra.Command{
	Use:   "ls [patient-id]",
	Short: "List a patient's sessions, most recent first",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}
		pendingOnly, _ := cmd.Flags().GetBool("pending")

		var sessions []models.Session
		if pendingOnly {
			sessions, err = db.GetPendingSessionsByPatient(patientID)
		} else {
			sessions, err = db.GetSessionsByPatient(patientID)
		}
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return
		}

		fmt.Printf("%-5s %-12s %-6s %-6s %-22s %-10s %8s %s\n",
			"ID", "DATE", "START", "END", "THERAPIST", "EVOLUTION", "FEE", "PAYMENT")
		total := 0.0
		for _, session := range sessions {
			therapistName := "-"
			if session.Therapist != nil {
				therapistName = session.Therapist.Name
			}
			line := fmt.Sprintf("%-5d %-12s %-6s %-6s %-22s %-10s %8.2f %s",
				session.ID, dates.ToDisplay(session.Date), session.StartTime,
				session.EndTime, truncate(therapistName, 20),
				truncate(session.EvolutionLevel, 10), session.FeeAmount, session.PaymentStatus)
			if session.PaymentStatus == models.PaymentPending {
				line = pendingStyle.Render(line)
				total += session.FeeAmount
			} else {
				line = paidStyle.Render(line)
			}
			fmt.Println(line)
		}
		if pendingOnly {
			fmt.Printf("Total pending: %.2f\n", total)
		}
	}),
}

var sessionPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List every unpaid session across the clinic",
	Long: `List all sessions awaiting payment, for every patient, as the
starting point for settling debts. Filter by patient name with
--search, then settle with 'clinigo session pay' or
'clinigo session settle'.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		term, _ := cmd.Flags().GetString("search")

		rows, err := db.GetAllPendingSessions(term)
		if err != nil {
			fmt.Printf("Error fetching pending sessions: %v\n", err)
			return
		}
		if len(rows) == 0 {
			fmt.Println("No pending sessions. 🎉")
			return
		}

		fmt.Printf("%-5s %-12s %-6s %-6s %-30s %8s\n",
			"ID", "DATE", "START", "PAT.", "PATIENT", "FEE")
		total := 0.0
		for _, row := range rows {
			start := row.StartTime
			if start == "" {
				start = "-"
			}
			fmt.Println(pendingStyle.Render(fmt.Sprintf("%-5d %-12s %-6s %-6d %-30s %8.2f",
				row.SessionID, dates.ToDisplay(row.Date), start,
				row.PatientID, truncate(row.PatientName, 28), row.FeeAmount)))
			total += row.FeeAmount
		}
		fmt.Printf("%d pending sessions, total %.2f\n", len(rows), total)
	}),
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show one session in full",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		session, err := db.GetSessionByID(sessionID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		therapistName := "-"
		if session.Therapist != nil {
			therapistName = session.Therapist.Name
		}
		fmt.Printf("Session #%d\n", session.ID)
		fmt.Printf("  Patient:    %s\n", session.Patient.Name)
		fmt.Printf("  Therapist:  %s\n", therapistName)
		fmt.Printf("  Date:       %s %s-%s\n", dates.ToDisplay(session.Date), session.StartTime, session.EndTime)
		fmt.Printf("  Fee:        %.2f (%s)\n", session.FeeAmount, session.PaymentStatus)
		fmt.Printf("  Evolution:  %s\n", session.EvolutionLevel)
		if session.Summary != "" {
			fmt.Printf("  Summary:    %s\n", session.Summary)
		}
		if session.EvolutionNotes != "" {
			fmt.Printf("  Notes:      %s\n", session.EvolutionNotes)
		}
		if session.TherapyPlan != "" {
			fmt.Printf("  Plan:       %s\n", session.TherapyPlan)
		}
	}),
}

var sessionPayCmd = &cobra.Command{
	Use:   "pay [session-id] [amount]",
	Short: "Mark a session as paid, fixing its amount",
	Long: `Set a session's payment status to Paid. The amount is written
together with the status, so pass the full intended amount even when
only the status changes.`,
	Args: cobra.ExactArgs(2),
	Run:  withDB(setFinance(models.PaymentPaid, "💰 Session #%d marked as Paid (%.2f)\n")),
}

var sessionUnpayCmd = &cobra.Command{
	Use:   "unpay [session-id] [amount]",
	Short: "Revert a session to pending",
	Args:  cobra.ExactArgs(2),
	Run:   withDB(setFinance(models.PaymentPending, "↩️  Session #%d reverted to Pending (%.2f)\n")),
}

func setFinance(status, doneFormat string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount '%s': must be a number\n", args[1])
			return
		}

		if err := db.UpdateSessionFinance(sessionID, amount, status); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf(doneFormat, sessionID, amount)
	}
}

var sessionSettleCmd = &cobra.Command{
	Use:   "settle [patient-id]",
	Short: "Mark all of a patient's pending sessions as paid",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		patientID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid patient ID '%s'\n", args[0])
			return
		}

		updated, err := db.MarkAllSessionsPaid(patientID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if updated == 0 {
			fmt.Println("No pending sessions for this patient.")
			return
		}
		fmt.Printf("💰 Settled %d pending sessions.\n", updated)
	}),
}

var sessionRemoveCmd = &cobra.Command{
	Use:   "rm [session-id]",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		sessionID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}
		if err := db.DeleteSession(sessionID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted session #%d\n", sessionID)
	}),
}

// sessionRequestFromFlags builds the service request from the shared
// book/edit flag set.
func sessionRequestFromFlags(cmd *cobra.Command, patientID uint) (*db.SessionRequest, error) {
	dateDisplay, _ := cmd.Flags().GetString("date")
	start, _ := cmd.Flags().GetString("from")
	end, _ := cmd.Flags().GetString("to")
	therapistID, _ := cmd.Flags().GetUint("therapist")
	summary, _ := cmd.Flags().GetString("summary")
	evolution, _ := cmd.Flags().GetString("evolution")
	notes, _ := cmd.Flags().GetString("notes")
	plan, _ := cmd.Flags().GetString("plan")

	storageDate, err := dates.ToStorage(dateDisplay)
	if err != nil {
		return nil, err
	}

	var therapistRef *uint
	if therapistID != 0 {
		therapistRef = &therapistID
	}

	return &db.SessionRequest{
		PatientID:      patientID,
		TherapistID:    therapistRef,
		Date:           storageDate,
		StartTime:      start,
		EndTime:        end,
		Summary:        summary,
		EvolutionLevel: evolution,
		EvolutionNotes: notes,
		TherapyPlan:    plan,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{sessionBookCmd, sessionEditCmd} {
		c.Flags().StringP("date", "d", "", "Session date (DD/MM/YYYY)")
		c.Flags().String("from", "", "Start time (HH:MM)")
		c.Flags().String("to", "", "End time (HH:MM)")
		c.Flags().UintP("therapist", "t", 0, "Therapist ID (0 for none)")
		c.Flags().StringP("summary", "s", "", "Session summary")
		c.Flags().StringP("evolution", "e", "", "Evolution level")
		c.Flags().StringP("notes", "n", "", "Evolution notes")
		c.Flags().StringP("plan", "p", "", "Therapeutic plan")
	}
	sessionListCmd.Flags().Bool("pending", false, "Only sessions awaiting payment")
	sessionPendingCmd.Flags().StringP("search", "s", "", "Filter by patient name substring")

	sessionCmd.AddCommand(sessionBookCmd)
	sessionCmd.AddCommand(sessionEditCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionPendingCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionPayCmd)
	sessionCmd.AddCommand(sessionUnpayCmd)
	sessionCmd.AddCommand(sessionSettleCmd)
	sessionCmd.AddCommand(sessionRemoveCmd)
}
