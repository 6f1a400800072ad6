// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// YearContext describes one natural year as seen from one longitude.
type YearContext struct {
	Start    time.Time
	Duration float64 // days between this year's first nadir and the next one
}

func (c YearContext) Span() time.Duration {
	return time.Duration(c.Duration * float64(DayLength))
}

type yearKey struct {
	year      int
	longitude float64
}

// NaturalSeasons holds the equinoxes and solstices of one natural year,
// each placed on the natural calendar.
type NaturalSeasons struct {
	DecemberSolstice NaturalDate
	MarchEquinox     NaturalDate
	JuneSolstice     NaturalDate
	SeptemberEquinox NaturalDate
}

type NaturalDateEngine struct {
	ephemeris Ephemeris
	years     *cache[yearKey, YearContext]
}

func NewNaturalDateEngine(ephemeris Ephemeris, cacheSize int) (*NaturalDateEngine, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultYearCacheSize
	}
	years, err := newCache[yearKey, YearContext](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("NaturalDateEngine → %w", err)
	}
	return &NaturalDateEngine{
		ephemeris: ephemeris,
		years:     years,
	}, nil
}

// ResolveYearContext returns the natural year that opens on the December
// solstice of gregorianYear, observed from longitude.
func (e *NaturalDateEngine) ResolveYearContext(gregorianYear int, longitude float64) (YearContext, error) {
	if err := validateLongitude(longitude); err != nil {
		return YearContext{}, err
	}
	return e.years.getOrCompute(yearKey{year: gregorianYear, longitude: longitude}, func() (YearContext, error) {
		start, err := e.ephemeris.Seasons(gregorianYear)
		if err != nil {
			return YearContext{}, err
		}
		end, err := e.ephemeris.Seasons(gregorianYear + 1)
		if err != nil {
			return YearContext{}, err
		}

		startNoon := solsticeNoon(start.DecemberSolstice)
		endNoon := solsticeNoon(end.DecemberSolstice)

		return YearContext{
			Start:    startNoon.Add(longitudeShift(longitude)),
			Duration: float64(endNoon.Sub(startNoon)) / float64(DayLength),
		}, nil
	})
}

// Compute places instant on the natural calendar at longitude.
func (e *NaturalDateEngine) Compute(instant time.Time, longitude float64) (NaturalDate, error) {
	if instant.IsZero() {
		return NaturalDate{}, &InvalidInstantError{Value: instant.String()}
	}
	if err := validateLongitude(longitude); err != nil {
		return NaturalDate{}, err
	}
	instant = instant.UTC()

	year, err := e.yearOf(instant, longitude)
	if err != nil {
		return NaturalDate{}, err
	}

	days := floorDays(instant.Sub(year.Start))
	nadir := year.Start.Add(time.Duration(days) * DayLength)
	dayOfYear := days + 1

	return NaturalDate{
		UnixTime:     instant,
		Longitude:    longitude,
		Year:         year.Start.Year() - ReferenceEpoch.Year() + 1,
		Moon:         days/daysPerMoon + 1,
		Week:         days/daysPerWeek + 1,
		WeekOfMoon:   (days/daysPerWeek)%weeksPerMoon + 1,
		DayOfYear:    dayOfYear,
		DayOfMoon:    days%daysPerMoon + 1,
		DayOfWeek:    days%daysPerWeek + 1,
		Day:          absoluteDay(instant, longitude),
		IsRainbowDay: dayOfYear > lastMoonDay,
		YearStart:    year.Start,
		YearDuration: year.Duration,
		Nadir:        nadir,
		Time:         timeOfDay(instant.Sub(nadir)),
	}, nil
}

func (e *NaturalDateEngine) FromUnixMilli(ms int64, longitude float64) (NaturalDate, error) {
	return e.Compute(time.UnixMilli(ms), longitude)
}

// ProjectEvent maps an event instant onto the natural day of date.
func (e *NaturalDateEngine) ProjectEvent(date NaturalDate, event time.Time) Degrees {
	return date.TimeOf(event)
}

// Seasons places the solstices and equinoxes of date's natural year on the
// calendar at date's longitude.
func (e *NaturalDateEngine) Seasons(date NaturalDate) (NaturalSeasons, error) {
	if err := date.Validate(); err != nil {
		return NaturalSeasons{}, err
	}
	opening, err := e.ephemeris.Seasons(date.YearStart.Year())
	if err != nil {
		return NaturalSeasons{}, fmt.Errorf("seasons → %w", err)
	}
	following, err := e.ephemeris.Seasons(date.YearStart.Year() + 1)
	if err != nil {
		return NaturalSeasons{}, fmt.Errorf("seasons → %w", err)
	}

	var seasons NaturalSeasons
	for _, s := range []struct {
		dst *NaturalDate
		at  time.Time
	}{
		{&seasons.DecemberSolstice, opening.DecemberSolstice},
		{&seasons.MarchEquinox, following.MarchEquinox},
		{&seasons.JuneSolstice, following.JuneSolstice},
		{&seasons.SeptemberEquinox, following.SeptemberEquinox},
	} {
		*s.dst, err = e.Compute(s.at, date.Longitude)
		if err != nil {
			return NaturalSeasons{}, fmt.Errorf("seasons → %w", err)
		}
	}
	return seasons, nil
}

func (e *NaturalDateEngine) CachedYears() int {
	return e.years.len()
}

func (e *NaturalDateEngine) Purge() {
	e.years.purge()
}

// yearOf guesses the natural year opened in the previous gregorian year and
// moves to the current one once the instant has passed its end. The December
// solstice never falls after the 24th, so one correction is always enough.
func (e *NaturalDateEngine) yearOf(instant time.Time, longitude float64) (YearContext, error) {
	gregorian := instant.Year()
	year, err := e.ResolveYearContext(gregorian-1, longitude)
	if err != nil {
		return YearContext{}, err
	}
	if instant.Sub(year.Start) >= year.Span() {
		year, err = e.ResolveYearContext(gregorian, longitude)
		if err != nil {
			return YearContext{}, err
		}
	}
	return year, nil
}

// ParseInstant reads an RFC3339 timestamp or a count of unix milliseconds.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, &InvalidInstantError{Value: value, Err: err}
	}
	return time.UnixMilli(ms).UTC(), nil
}

// solsticeNoon moves a solstice to the UTC noon of its day, or of the next day
// when it falls in the afternoon.
func solsticeNoon(solstice time.Time) time.Time {
	solstice = solstice.UTC()
	if solstice.Hour() >= 12 {
		solstice = solstice.AddDate(0, 0, 1)
	}
	y, m, d := solstice.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// longitudeShift converts the antimeridian midnight into local midnight.
func longitudeShift(longitude float64) time.Duration {
	return time.Duration((180 - longitude) * float64(DayLength) / degreesPerDay)
}

func absoluteDay(instant time.Time, longitude float64) int {
	epoch := ReferenceEpoch.Add(longitudeShift(longitude))
	ms := float64(instant.UnixMilli() - epoch.UnixMilli())
	return int(math.Floor(ms / float64(DayLength.Milliseconds())))
}

func floorDays(d time.Duration) int {
	days := d / DayLength
	if d%DayLength < 0 {
		days--
	}
	return int(days)
}

func timeOfDay(sinceNadir time.Duration) float64 {
	t := float64(sinceNadir) * degreesPerDay / float64(DayLength)
	if t >= degreesPerDay {
		return 0
	}
	return t
}
