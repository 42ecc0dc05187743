package main

import (
	"fmt"
	"weather-page-service/internal/app"
	"weather-page-service/internal/config"
	"weather-page-service/internal/domain"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [location]",
	Short: "Print current conditions and the 5-day forecast as JSON",
	Long: `Resolve a "City, Region, Country" location (or this machine's network
address when none is given), fetch the weather and print the report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

var geocodeCmd = &cobra.Command{
	Use:   "geocode <location>",
	Short: "Resolve a location query and print the matched place as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGeocode,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(geocodeCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	var place domain.Place
	if len(args) == 0 {
		place, err = a.Resolver.ResolveByIP(ctx)
	} else {
		place, err = a.Resolver.ResolveByQuery(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	report, err := a.Weather.FetchWeather(ctx, place)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), report)
}

func runGeocode(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	place, err := a.Resolver.ResolveByQuery(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("geocode: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), place)
}

func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cfg)
}
