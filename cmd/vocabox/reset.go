package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace a user's progress with a fresh random starter set",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		if userID <= 0 {
			return fmt.Errorf("--user is required")
		}

		a, err := newApp(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		created, err := a.assignments.ResetUser(cmd.Context(), userID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "user %d now has %d new items\n", userID, created)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int64("user", 0, "Telegram user ID")
}
