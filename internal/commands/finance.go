package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/dates"
	"github.com/mvcarvalho/clinigo/internal/db"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Cash-flow reports",
}

var financeReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Receipts, expenses and balance for a period",
	Long: `Show the cash flow for a closed date interval. The balance counts
only realized payments; pending amounts are listed separately as
receivable and never enter the balance.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		start, end, err := periodFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		receipts, err := db.GetReceiptsByPeriod(start, end)
		if err != nil {
			fmt.Printf("Error fetching receipts: %v\n", err)
			return
		}
		expenses, err := db.GetExpensesByPeriod(start, end)
		if err != nil {
			fmt.Printf("Error fetching expenses: %v\n", err)
			return
		}

		fmt.Printf("Cash flow %s — %s\n\n", dates.ToDisplay(start), dates.ToDisplay(end))

		fmt.Println("Receipts (paid sessions):")
		if len(receipts) == 0 {
			fmt.Println("  none")
		}
		for _, receipt := range receipts {
			fmt.Printf("  %-12s %-28s %-22s %8.2f\n",
				dates.ToDisplay(receipt.Date), truncate(receipt.PatientName, 26),
				truncate(receipt.TherapistName, 20), receipt.Amount)
		}

		fmt.Println("\nExpenses:")
		if len(expenses) == 0 {
			fmt.Println("  none")
		}
		for _, expense := range expenses {
			fmt.Printf("  %-12s %-42s %8.2f\n",
				dates.ToDisplay(expense.Date), truncate(expense.Description, 40), expense.Amount)
		}

		totalReceipts, err := db.TotalReceipts(start, end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		totalExpenses, err := db.TotalExpenses(start, end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		receivable, err := db.TotalReceivable(start, end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		balance, err := db.Balance(start, end)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("\nTotal receipts:  %10.2f\n", totalReceipts)
		fmt.Printf("Total expenses:  %10.2f\n", totalExpenses)
		fmt.Printf("Receivable:      %10.2f  (not in balance)\n", receivable)
		fmt.Printf("Balance:         %10.2f\n", balance)
	}),
}

var financePlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Paid amounts grouped by health plan",
	Long: `Group the period's paid session amounts by the patient's health
plan, highest total first. Patients without a plan appear in no group.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		start, end, err := periodFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rows, err := db.GetReceiptsByHealthPlan(start, end)
		if err != nil {
			fmt.Printf("Error fetching report: %v\n", err)
			return
		}
		if len(rows) == 0 {
			fmt.Println("No paid sessions in this period.")
			return
		}

		fmt.Printf("%-30s %12s\n", "HEALTH PLAN", "TOTAL")
		grandTotal := 0.0
		for _, row := range rows {
			fmt.Printf("%-30s %12.2f\n", truncate(row.PlanName, 28), row.Total)
			grandTotal += row.Total
		}
		fmt.Printf("%-30s %12.2f\n", "TOTAL", grandTotal)
	}),
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expense entries",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add [description] [amount]",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount '%s': must be a number\n", args[1])
			return
		}
		dateDisplay, _ := cmd.Flags().GetString("date")
		storageDate := dates.Today()
		if dateDisplay != "" {
			storageDate, err = dates.ToStorage(dateDisplay)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		expense, err := db.AddExpense(args[0], amount, storageDate)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Recorded expense #%d: %s (%.2f)\n", expense.ID, expense.Description, expense.Amount)
	}),
}

var expenseRemoveCmd = &cobra.Command{
	Use:   "rm [expense-id]",
	Short: "Delete an expense entry",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		expenseID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid expense ID '%s'\n", args[0])
			return
		}
		if err := db.DeleteExpense(expenseID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted expense #%d\n", expenseID)
	}),
}

// periodFromFlags reads --from/--to display dates and converts them.
// Both bounds are inclusive.
func periodFromFlags(cmd *cobra.Command) (string, string, error) {
	fromDisplay, _ := cmd.Flags().GetString("from")
	toDisplay, _ := cmd.Flags().GetString("to")

	start, err := dates.ToStorage(fromDisplay)
	if err != nil {
		return "", "", err
	}
	end, err := dates.ToStorage(toDisplay)
	if err != nil {
		return "", "", err
	}
	if start > end {
		return "", "", fmt.Errorf("period start %s is after end %s", fromDisplay, toDisplay)
	}
	return start, end, nil
}

func init() {
	for _, c := range []*cobra.Command{financeReportCmd, financePlansCmd} {
		c.Flags().String("from", "", "Period start (DD/MM/YYYY)")
		c.Flags().String("to", "", "Period end (DD/MM/YYYY)")
	}
	expenseAddCmd.Flags().StringP("date", "d", "", "Expense date (DD/MM/YYYY, defaults to today)")

	financeCmd.AddCommand(financeReportCmd)
	financeCmd.AddCommand(financePlansCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseRemoveCmd)
}
