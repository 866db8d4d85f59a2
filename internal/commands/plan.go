package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/db"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage health plans",
}

var planListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List health plans",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		plans, err := db.GetHealthPlans()
		if err != nil {
			fmt.Printf("Error fetching health plans: %v\n", err)
			return
		}
		fmt.Printf("%-4s %s\n", "ID", "NAME")
		for _, plan := range plans {
			fmt.Printf("%-4d %s\n", plan.ID, plan.Name)
		}
	}),
}

var planAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a health plan",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		plan, err := db.CreateHealthPlan(args[0])
		if err != nil {
			if errors.Is(err, db.ErrDuplicate) {
				fmt.Printf("⚠️  Health plan %q already exists.\n", args[0])
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added health plan #%d: %s\n", plan.ID, plan.Name)
	}),
}

var planRemoveCmd = &cobra.Command{
	Use:   "rm [plan-id]",
	Short: "Delete a health plan (blocked while patients use it)",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		planID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid plan ID '%s'\n", args[0])
			return
		}
		if err := db.DeleteHealthPlan(planID); err != nil {
			if errors.Is(err, db.ErrInUse) {
				fmt.Printf("⚠️  Cannot delete: %v\n", err)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted health plan #%d\n", planID)
	}),
}

func init() {
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planRemoveCmd)
}
