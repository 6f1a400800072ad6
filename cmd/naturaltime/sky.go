// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Show sun events and altitude on the natural day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := naturalDateFromFlags(cmd)
		if err != nil {
			return err
		}
		latitude := latitudeFromFlags(cmd)

		events, err := projector.SunEvents(date, latitude)
		if err != nil {
			return err
		}
		altitude, err := projector.SunAltitude(date, latitude)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", date)
		fmt.Fprintf(out, "  Night end:      %05.1f°\n", events.NightEnd)
		fmt.Fprintf(out, "  Sunrise:        %05.1f°\n", events.Sunrise)
		fmt.Fprintf(out, "  Golden (am):    %05.1f°\n", events.MorningGoldenHour)
		fmt.Fprintf(out, "  Golden (pm):    %05.1f°\n", events.EveningGoldenHour)
		fmt.Fprintf(out, "  Sunset:         %05.1f°\n", events.Sunset)
		fmt.Fprintf(out, "  Night start:    %05.1f°\n", events.NightStart)
		fmt.Fprintf(out, "  Altitude:       %.1f° (highest %.1f°)\n", altitude.Altitude, altitude.HighestAltitude)
		return nil
	},
}

var moonCmd = &cobra.Command{
	Use:   "moon",
	Short: "Show moon phase, altitude and events on the natural day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := naturalDateFromFlags(cmd)
		if err != nil {
			return err
		}
		latitude := latitudeFromFlags(cmd)

		position, err := projector.MoonPosition(date, latitude)
		if err != nil {
			return err
		}
		events, err := projector.MoonEvents(date, latitude)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", date)
		fmt.Fprintf(out, "  Phase:          %.1f°\n", position.Phase)
		fmt.Fprintf(out, "  Altitude:       %.1f° (highest %.1f°)\n", position.Altitude, position.HighestAltitude)
		fmt.Fprintf(out, "  Moonrise:       %s\n", events.Moonrise)
		fmt.Fprintf(out, "  Moonset:        %s\n", events.Moonset)
		fmt.Fprintf(out, "  Culmination:    %s\n", events.Culmination)
		return nil
	},
}

var mustachesCmd = &cobra.Command{
	Use:   "mustaches",
	Short: "Show the solstice sunrise and sunset range at a latitude",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := naturalDateFromFlags(cmd)
		if err != nil {
			return err
		}

		r, err := projector.MustachesRange(date, latitudeFromFlags(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  Winter:         %05.1f° → %05.1f°\n", r.WinterSunrise, r.WinterSunset)
		fmt.Fprintf(out, "  Summer:         %05.1f° → %05.1f°\n", r.SummerSunrise, r.SummerSunset)
		fmt.Fprintf(out, "  Mustache angle: %.1f°\n", r.AverageMustacheAngle)
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Show the solstices and equinoxes of the natural year",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := naturalDateFromFlags(cmd)
		if err != nil {
			return err
		}

		seasons, err := engine.Seasons(date)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  December solstice: %s\n", seasons.DecemberSolstice)
		fmt.Fprintf(out, "  March equinox:     %s\n", seasons.MarchEquinox)
		fmt.Fprintf(out, "  June solstice:     %s\n", seasons.JuneSolstice)
		fmt.Fprintf(out, "  September equinox: %s\n", seasons.SeptemberEquinox)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sunCmd)
	rootCmd.AddCommand(moonCmd)
	rootCmd.AddCommand(mustachesCmd)
	rootCmd.AddCommand(seasonsCmd)
}
