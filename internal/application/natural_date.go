// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"math"
	"time"
)

const DayLength = 24 * time.Hour

const (
	daysPerWeek   = 7
	daysPerMoon   = 28
	weeksPerMoon  = 4
	moonsPerYear  = 13
	lastMoonDay   = moonsPerYear * daysPerMoon
	degreesPerDay = 360.0
)

// ReferenceEpoch is the December solstice that opens natural year 1, as seen
// from the antimeridian.
var ReferenceEpoch = time.Date(2012, time.December, 21, 12, 0, 0, 0, time.UTC)

// NaturalDate is one instant at one longitude on the solstice-anchored
// 13-moon calendar. Values are built by NaturalDateEngine.Compute and are
// never modified afterwards.
type NaturalDate struct {
	UnixTime  time.Time
	Longitude float64

	Year         int
	Moon         int
	Week         int
	WeekOfMoon   int
	DayOfYear    int
	DayOfMoon    int
	DayOfWeek    int
	Day          int
	IsRainbowDay bool

	YearStart    time.Time
	YearDuration float64 // days
	Nadir        time.Time
	Time         float64 // degrees since nadir, [0, 360)
}

func (d NaturalDate) UnixMilli() int64 {
	return d.UnixTime.UnixMilli()
}

// TimeOf projects an absolute instant onto this natural day. Instants outside
// [Nadir, Nadir+24h] do not occur within the day.
func (d NaturalDate) TimeOf(event time.Time) Degrees {
	if event.Before(d.Nadir) || event.After(d.Nadir.Add(DayLength)) {
		return DoesNotOccur
	}
	return Occurs(float64(event.Sub(d.Nadir)) * degreesPerDay / float64(DayLength))
}

// DayIdentity names the natural calendar day, independent of the time of day.
func (d NaturalDate) DayIdentity() string {
	if d.IsRainbowDay {
		if d.DayOfYear > lastMoonDay+1 {
			return fmt.Sprintf("%d/RAINBOW+", d.Year)
		}
		return fmt.Sprintf("%d/RAINBOW", d.Year)
	}
	return fmt.Sprintf("%d/%d/%d", d.Year, d.Moon, d.DayOfMoon)
}

func (d NaturalDate) IsSameDay(other NaturalDate) bool {
	return d.Longitude == other.Longitude && d.Nadir.Equal(other.Nadir)
}

func (d NaturalDate) String() string {
	if d.IsRainbowDay {
		suffix := ""
		if d.DayOfYear > lastMoonDay+1 {
			suffix = "+"
		}
		return fmt.Sprintf("%03d)RAINBOW%s %05.1f°", d.Year, suffix, d.Time)
	}
	return fmt.Sprintf("%03d)%02d)%02d %05.1f°", d.Year, d.Moon, d.DayOfMoon, d.Time)
}

// Validate checks that the derived fields are in range and agree with each
// other. Dates arriving from outside the engine go through here first.
func (d NaturalDate) Validate() error {
	if d.UnixTime.IsZero() {
		return &InvalidNaturalDateError{Field: "UnixTime", Value: d.UnixTime, Expected: "a non-zero instant"}
	}
	if err := validateLongitude(d.Longitude); err != nil {
		return &InvalidNaturalDateError{Field: "Longitude", Value: d.Longitude, Expected: "a finite number in [-180, 180]"}
	}

	ranges := []struct {
		field    string
		value    int
		min, max int
	}{
		{"Moon", d.Moon, 1, moonsPerYear + 1},
		{"Week", d.Week, 1, 53},
		{"WeekOfMoon", d.WeekOfMoon, 1, weeksPerMoon},
		{"DayOfYear", d.DayOfYear, 1, lastMoonDay + 2},
		{"DayOfMoon", d.DayOfMoon, 1, daysPerMoon},
		{"DayOfWeek", d.DayOfWeek, 1, daysPerWeek},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return &InvalidNaturalDateError{Field: r.field, Value: r.value, Expected: fmt.Sprintf("an integer in [%d, %d]", r.min, r.max)}
		}
	}

	if d.IsRainbowDay != (d.DayOfYear > lastMoonDay) {
		return &InvalidNaturalDateError{Field: "IsRainbowDay", Value: d.IsRainbowDay, Expected: fmt.Sprintf("DayOfYear > %d", lastMoonDay)}
	}
	if (d.Moon == moonsPerYear+1) != d.IsRainbowDay {
		return &InvalidNaturalDateError{Field: "Moon", Value: d.Moon, Expected: "14 exactly on rainbow days"}
	}
	if d.YearDuration < 365 || d.YearDuration > 366 {
		return &InvalidNaturalDateError{Field: "YearDuration", Value: d.YearDuration, Expected: "365 or 366 days"}
	}
	if math.IsNaN(d.Time) || d.Time < 0 || d.Time >= degreesPerDay {
		return &InvalidNaturalDateError{Field: "Time", Value: d.Time, Expected: "degrees in [0, 360)"}
	}
	if d.Nadir.IsZero() || d.UnixTime.Before(d.Nadir) || !d.UnixTime.Before(d.Nadir.Add(DayLength)) {
		return &InvalidNaturalDateError{Field: "Nadir", Value: d.Nadir, Expected: "the natural midnight at or before UnixTime"}
	}

	return nil
}
