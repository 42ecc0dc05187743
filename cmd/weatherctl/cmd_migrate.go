package main

import (
	"errors"
	"log"
	"strings"
	"weather-page-service/internal/app"
	"weather-page-service/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the Postgres geocode cache schema",
	Long:  `Connect to DATABASE_URL and create the geocode_cache table if it does not exist.`,
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}

	log.Println("Initializing database schema...")
	db, err := app.OpenDatabase(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("Schema ready.")

	return nil
}
