package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvcarvalho/clinigo/internal/auth"
	"github.com/mvcarvalho/clinigo/internal/db"
	"github.com/mvcarvalho/clinigo/internal/models"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts (admin only)",
}

// adminSession authenticates the calling admin from the persistent
// --admin-user/--admin-pass flags. User management never runs without
// an explicit admin identity.
func adminSession(cmd *cobra.Command) (*auth.Session, error) {
	username, _ := cmd.Flags().GetString("admin-user")
	password, _ := cmd.Flags().GetString("admin-pass")

	session, err := db.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, fmt.Errorf("user %q is not an admin", session.Username)
	}
	return session, nil
}

var userAddCmd = &cobra.Command{
	Use:   "add [username] [password]",
	Short: "Create a login account",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := adminSession(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		level, _ := cmd.Flags().GetString("level")

		user, err := db.CreateUser(args[0], args[1], level)
		if err != nil {
			if errors.Is(err, db.ErrDuplicate) {
				fmt.Printf("⚠️  Username %q is already taken.\n", args[0])
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Created user #%d: %s (%s)\n", user.ID, user.Username, user.AccessLevel)
	}),
}

var userListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List login accounts",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := adminSession(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		users, err := db.GetUsers()
		if err != nil {
			fmt.Printf("Error fetching users: %v\n", err)
			return
		}
		fmt.Printf("%-4s %-24s %s\n", "ID", "USERNAME", "LEVEL")
		for _, user := range users {
			fmt.Printf("%-4d %-24s %s\n", user.ID, user.Username, user.AccessLevel)
		}
	}),
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd [user-id] [new-password]",
	Short: "Change an account's password",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := adminSession(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		userID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid user ID '%s'\n", args[0])
			return
		}

		if err := db.UpdateUserPassword(userID, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Password updated for user #%d\n", userID)
	}),
}

var userRemoveCmd = &cobra.Command{
	Use:   "rm [user-id]",
	Short: "Delete a login account",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := adminSession(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		userID, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: invalid user ID '%s'\n", args[0])
			return
		}
		if userID == session.UserID {
			fmt.Println("⚠️  Refusing to delete the account you are logged in as.")
			return
		}

		if err := db.DeleteUser(userID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted user #%d\n", userID)
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Check credentials",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.Authenticate(args[0], args[1])
		if err != nil {
			if errors.Is(err, db.ErrInvalidCredentials) {
				fmt.Println("❌ Invalid username or password.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Logged in as %s (%s)\n", session.Username, session.AccessLevel)
	}),
}

func init() {
	userCmd.PersistentFlags().String("admin-user", "", "Admin username")
	userCmd.PersistentFlags().String("admin-pass", "", "Admin password")
	userAddCmd.Flags().StringP("level", "l", models.AccessTherapist, "Access level: admin or therapist")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userRemoveCmd)
}
