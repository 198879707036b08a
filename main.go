package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foodexchange-admin",
	Short: "Admin gateway for the food exchange marketplace",
	Long: `foodexchange-admin serves the marketplace admin console over HTTP: the
dealer directory, user profiles with their posts and bids, deliveries, the
story feed and registration. All marketplace data lives behind the
marketplace REST API; the gateway keeps only operator sessions.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, validateRegistrationCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
