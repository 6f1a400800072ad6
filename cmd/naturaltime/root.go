// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GetSky/NaturalTime/internal/application"
	"github.com/GetSky/NaturalTime/internal/infrastructure"
	"github.com/GetSky/NaturalTime/internal/log"
	"github.com/spf13/cobra"
)

var (
	engine    *application.NaturalDateEngine
	projector *application.CelestialEventProjector
)

var rootCmd = &cobra.Command{
	Use:   "naturaltime",
	Short: "Natural time calculator",
	Long:  "naturaltime converts an instant and a location to the solstice-anchored 13-moon calendar and projects sun and moon events onto its 360° day.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logger := log.Must(debug)

		var err error
		engine, err = application.NewNaturalDateEngine(infrastructure.NewEphemerisService(), application.DefaultYearCacheSize)
		if err != nil {
			return err
		}
		projector, err = application.NewCelestialEventProjector(engine, logger, application.DefaultEventCacheSize)
		return err
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("time", "", "instant as RFC3339 or unix milliseconds (default now)")
	rootCmd.PersistentFlags().Float64("lat", 0, "observer latitude in degrees, north positive")
	rootCmd.PersistentFlags().Float64("lon", 0, "observer longitude in degrees, east positive")
	rootCmd.PersistentFlags().Bool("debug", false, "development logging")
}

// naturalDateFromFlags resolves the --time and --lon flags into a natural date.
func naturalDateFromFlags(cmd *cobra.Command) (application.NaturalDate, error) {
	instant := time.Now().UTC()
	if value, _ := cmd.Flags().GetString("time"); value != "" {
		var err error
		instant, err = application.ParseInstant(value)
		if err != nil {
			return application.NaturalDate{}, err
		}
	}
	longitude, _ := cmd.Flags().GetFloat64("lon")
	return engine.Compute(instant, longitude)
}

func latitudeFromFlags(cmd *cobra.Command) float64 {
	latitude, _ := cmd.Flags().GetFloat64("lat")
	return latitude
}
