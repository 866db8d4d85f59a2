package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
)

var availCmd = &cobra.Command{
	Use:   "avail",
	Short: "Manage therapist availability",
	Long: `Declare and inspect the windows therapists are open for booking.
Availability is informational: bookings are not validated against it.`,
}

var availAddCmd = &cobra.Command{
	Use:   "add [therapist-id]",
	Short: "Declare an availability window",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapistID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid therapist ID '%s'\n", args[0])
			return
		}
		dateDisplay, _ := cmd.Flags().GetString("date")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		storageDate, err := dates.ToStorage(dateDisplay)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		slot, err := db.AddAvailability(therapistID, storageDate, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Availability #%d on %s %s-%s\n",
			slot.ID, dates.ToDisplay(slot.Date), slot.StartTime, slot.EndTime)
	}),
}

var availListCmd = &cobra.Command{
	Use:   "ls [therapist-id]",
	Short: "List a therapist's windows for one date",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapistID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid therapist ID '%s'\n", args[0])
			return
		}
		dateDisplay, _ := cmd.Flags().GetString("date")
		storageDate, err := dates.ToStorage(dateDisplay)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		slots, err := db.GetAvailabilityByDate(therapistID, storageDate)
		if err != nil {
			fmt.Printf("Error fetching availability: %v\n", err)
			return
		}
		if len(slots) == 0 {
			fmt.Println("No availability declared for this date.")
			return
		}
		fmt.Printf("%-4s %-7s %s\n", "ID", "FROM", "TO")
		for _, slot := range slots {
			fmt.Printf("%-4d %-7s %s\n", slot.ID, slot.StartTime, slot.EndTime)
		}
	}),
}

var availMonthCmd = &cobra.Command{
	Use:   "month [therapist-id]",
	Short: "List the dates with declared availability in a month",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapistID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid therapist ID '%s'\n", args[0])
			return
		}
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		if year == 0 {
			year = time.Now().Year()
		}
		if month == 0 {
			month = int(time.Now().Month())
		}

		days, err := db.GetAvailableDatesInMonth(therapistID, year, month)
		if err != nil {
			fmt.Printf("Error fetching availability: %v\n", err)
			return
		}
		if len(days) == 0 {
			fmt.Printf("No availability declared for %04d-%02d.\n", year, month)
			return
		}
		for _, day := range days {
			fmt.Println(dates.ToDisplay(day))
		}
	}),
}

var availRemoveCmd = &cobra.Command{
	Use:   "rm [slot-id]",
	Short: "Delete an availability window",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		slotID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid slot ID '%s'\n", args[0])
			return
		}
		if err := db.DeleteAvailability(slotID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted availability #%d\n", slotID)
	}),
}

func init() {
	availAddCmd.Flags().StringP("date", "d", "", "Date (DD/MM/YYYY)")
	availAddCmd.Flags().String("from", "", "Start time (HH:MM)")
	availAddCmd.Flags().String("to", "", "End time (HH:MM)")
	availListCmd.Flags().StringP("date", "d", "", "Date (DD/MM/YYYY)")
	availMonthCmd.Flags().IntP("year", "y", 0, "Year (defaults to current)")
	availMonthCmd.Flags().IntP("month", "m", 0, "Month 1-12 (defaults to current)")

	availCmd.AddCommand(availAddCmd)
	availCmd.AddCommand(availListCmd)
	availCmd.AddCommand(availMonthCmd)
	availCmd.AddCommand(availRemoveCmd)
}
