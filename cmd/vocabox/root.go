package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "vocabox",
	Short: "Spaced-repetition vocabulary trainer",
	Long:  "Vocabox schedules vocabulary reviews with a five-box Leitner system and serves them over Telegram and a JSON API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().Bool("debug", false, "Human-readable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the production logger, or a development one with --debug
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
