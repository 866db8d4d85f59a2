package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/db"
)

var backupCmd = &cobra.Command{
	Use:   "backup [directory]",
	Short: "Copy the database to a timestamped backup file",
	Args:  cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		filename := fmt.Sprintf("backup_clinigo_%s.db", time.Now().Format("2006-01-02_15-04-05"))
		dest := filepath.Join(dir, filename)

		if err := db.Backup(dest); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Backup saved to %s\n", dest)
	}),
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Replace the database with a backup (admin only)",
	Long: `Replace ALL current data with the contents of a backup file. This
cannot be undone. Requires --admin-user/--admin-pass and --yes.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := adminSession(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("⚠️  Restoring replaces all current data. Re-run with --yes to confirm.")
			return
		}

		if err := db.Restore(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Database restored.")
	}),
}

func init() {
	restoreCmd.Flags().String("admin-user", "", "Admin username")
	restoreCmd.Flags().String("admin-pass", "", "Admin password")
	restoreCmd.Flags().Bool("yes", false, "Confirm the restore")
}
