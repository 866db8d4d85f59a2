package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/tui"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda [date]",
	Short: "Browse the day schedule",
	Long: `Open the interactive agenda on a date (DD/MM/YYYY, defaults to
today): the day's sessions and every therapist's declared availability.
Use --print for plain output.`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		date := dates.Today()
		if len(args) == 1 {
			storage, err := dates.ToStorage(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			date = storage
		}

		plain, _ := cmd.Flags().GetBool("print")
		if plain {
			printAgenda(date)
			return
		}

		if err := tui.RunAgendaTUI(date); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func printAgenda(date string) {
	fmt.Printf("Agenda for %s\n\n", dates.ToDisplay(date))

	sessions, err := db.GetSessionsByDate(date)
	if err != nil {
		fmt.Printf("Error fetching sessions: %v\n", err)
		return
	}
	fmt.Println("Sessions:")
	if len(sessions) == 0 {
		fmt.Println("  none")
	}
	for _, session := range sessions {
		therapistName := "-"
		if session.Therapist != nil {
			therapistName = session.Therapist.Name
		}
		fmt.Printf("  %s-%-6s %-28s %s\n",
			session.StartTime, session.EndTime, truncate(session.Patient.Name, 26), therapistName)
	}

	slots, err := db.GetDayAvailability(date)
	if err != nil {
		fmt.Printf("Error fetching availability: %v\n", err)
		return
	}
	fmt.Println("\nAvailability:")
	if len(slots) == 0 {
		fmt.Println("  none")
	}
	for _, slot := range slots {
		fmt.Printf("  %-28s %s-%s\n", truncate(slot.TherapistName, 26), slot.StartTime, slot.EndTime)
	}
}

func init() {
	agendaCmd.Flags().Bool("print", false, "Plain output instead of the interactive view")
}
