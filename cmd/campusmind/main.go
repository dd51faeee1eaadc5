package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusmind/internal/interfaces/cli/migrate"
	"campusmind/internal/interfaces/cli/seed"
	"campusmind/internal/interfaces/cli/server"
)

// @title CampusMind API
// @version 1.0
// @description Student issue reporting and escalation service.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "campusmind",
		Short: "CampusMind - campus issue reporting and escalation",
		Long:  `CampusMind routes student-reported issues through the campus reporting chain, with classification, escalation and verification built in.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
