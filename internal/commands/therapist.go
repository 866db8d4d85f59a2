package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/db"
)

var therapistCmd = &cobra.Command{
	Use:   "therapist",
	Short: "Manage therapists",
}

var therapistAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new therapist",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		specialty, _ := cmd.Flags().GetString("specialty")
		contact, _ := cmd.Flags().GetString("contact")

		therapist, err := db.CreateTherapist(args[0], specialty, contact)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Registered therapist #%d: %s\n", therapist.ID, therapist.Name)
	}),
}

var therapistEditCmd = &cobra.Command{
	Use:   "edit [therapist-id] [name]",
	Short: "Update a therapist",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapistID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid therapist ID '%s'\n", args[0])
			return
		}
		specialty, _ := cmd.Flags().GetString("specialty")
		contact, _ := cmd.Flags().GetString("contact")

		therapist, err := db.UpdateTherapist(therapistID, args[1], specialty, contact)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Updated therapist #%d: %s\n", therapist.ID, therapist.Name)
	}),
}

var therapistListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List therapists",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapists, err := db.GetTherapists()
		if err != nil {
			fmt.Printf("Error fetching therapists: %v\n", err)
			return
		}
		if len(therapists) == 0 {
			fmt.Println("No therapists found. Use 'clinigo therapist add \"name\"' to register one.")
			return
		}

		fmt.Printf("%-4s %-30s %-20s %s\n", "ID", "NAME", "SPECIALTY", "CONTACT")
		for _, therapist := range therapists {
			fmt.Printf("%-4d %-30s %-20s %s\n",
				therapist.ID, truncate(therapist.Name, 28),
				truncate(therapist.Specialty, 18), therapist.Contact)
		}
	}),
}

var therapistRemoveCmd = &cobra.Command{
	Use:   "rm [therapist-id]",
	Short: "Delete a therapist (blocked while they have sessions)",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		therapistID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid therapist ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteTherapist(therapistID); err != nil {
			if errors.Is(err, db.ErrInUse) {
				fmt.Printf("⚠️  Cannot delete: %v\n", err)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted therapist #%d\n", therapistID)
	}),
}

func init() {
	for _, c := range []*cobra.Command{therapistAddCmd, therapistEditCmd} {
		c.Flags().StringP("specialty", "s", "", "Specialty")
		c.Flags().StringP("contact", "c", "", "Contact (phone or email)")
	}

	therapistCmd.AddCommand(therapistAddCmd)
	therapistCmd.AddCommand(therapistEditCmd)
	therapistCmd.AddCommand(therapistListCmd)
	therapistCmd.AddCommand(therapistRemoveCmd)
}
