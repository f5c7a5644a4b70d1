package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocabox/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics for a user",
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

		stats, err := a.stats.Snapshot(cmd.Context(), userID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "items:          %d\n", stats.TotalItems)
		fmt.Fprintf(out, "due:            %d\n", stats.DueCount)
		fmt.Fprintf(out, "reviewed today: %d\n", stats.ReviewedToday)
		fmt.Fprintf(out, "accuracy:       %d%%\n", stats.Accuracy)
		for level := srs.MinLevel; level <= srs.MaxLevel; level++ {
			fmt.Fprintf(out, "box %d:          %d\n", level, stats.Bucket(level))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int64("user", 0, "Telegram user ID")
}
