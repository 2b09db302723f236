package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "store-ratings-api",
	Short: "Multi-role store rating platform",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Local development convenience; production reads real env vars.
		if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
			_ = godotenv.Load()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
