// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Show the natural date of an instant",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := naturalDateFromFlags(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", date)
		fmt.Fprintf(out, "  Year:         %d (started %s, %.0f days)\n", date.Year, date.YearStart.Format(time.RFC3339), date.YearDuration)
		if date.IsRainbowDay {
			fmt.Fprintf(out, "  Rainbow day:  %s\n", date.DayIdentity())
		} else {
			fmt.Fprintf(out, "  Moon:         %d, day %d, week %d\n", date.Moon, date.DayOfMoon, date.WeekOfMoon)
		}
		fmt.Fprintf(out, "  Day of year:  %d (week %d, weekday %d)\n", date.DayOfYear, date.Week, date.DayOfWeek)
		fmt.Fprintf(out, "  Day:          %d\n", date.Day)
		fmt.Fprintf(out, "  Nadir:        %s\n", date.Nadir.Format(time.RFC3339))
		fmt.Fprintf(out, "  Time:         %.3f°\n", date.Time)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
}
