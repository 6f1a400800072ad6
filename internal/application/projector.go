// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	nightAltitude      = -12.0
	goldenHourAltitude = 6.0

	summerStartDay = 91
	summerEndDay   = 273
)

// SunEvents are always defined: when the sun never crosses a threshold during
// the natural day, rises fall back to 0° and sets to 360° on a summer day, and
// both collapse to 180° otherwise.
type SunEvents struct {
	Sunrise           float64
	Sunset            float64
	NightStart        float64
	NightEnd          float64
	MorningGoldenHour float64
	EveningGoldenHour float64
}

type SunAltitude struct {
	Altitude        float64
	HighestAltitude float64
}

type MoonPosition struct {
	Phase           float64
	Altitude        float64
	HighestAltitude float64
}

type MoonEvents struct {
	Moonrise        Degrees
	Moonset         Degrees
	Culmination     Degrees
	HighestAltitude float64
}

type MustachesRange struct {
	WinterSunrise        float64
	WinterSunset         float64
	SummerSunrise        float64
	SummerSunset         float64
	AverageMustacheAngle float64
}

type eventKey struct {
	day       string
	latitude  float64
	longitude float64
}

type mustacheKey struct {
	year     int
	latitude float64
}

type CelestialEventProjector struct {
	engine    *NaturalDateEngine
	ephemeris Ephemeris
	logger    *zap.SugaredLogger

	sun       *cache[eventKey, SunEvents]
	moon      *cache[eventKey, MoonEvents]
	mustaches *cache[mustacheKey, MustachesRange]
}

func NewCelestialEventProjector(engine *NaturalDateEngine, logger *zap.SugaredLogger, cacheSize int) (*CelestialEventProjector, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultEventCacheSize
	}

	sun, err := newCache[eventKey, SunEvents](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("CelestialEventProjector → %w", err)
	}
	moon, err := newCache[eventKey, MoonEvents](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("CelestialEventProjector → %w", err)
	}
	mustaches, err := newCache[mustacheKey, MustachesRange](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("CelestialEventProjector → %w", err)
	}

	return &CelestialEventProjector{
		engine:    engine,
		ephemeris: engine.ephemeris,
		logger:    logger,
		sun:       sun,
		moon:      moon,
		mustaches: mustaches,
	}, nil
}

func (p *CelestialEventProjector) SunEvents(date NaturalDate, latitude float64) (SunEvents, error) {
	if err := p.validate(date, latitude); err != nil {
		return SunEvents{}, err
	}

	key := eventKey{day: date.DayIdentity(), latitude: latitude, longitude: date.Longitude}
	return p.sun.getOrCompute(key, func() (SunEvents, error) {
		events, err := p.searchSunEvents(date, latitude)
		if err != nil {
			p.logFailure("sunEvents", date, latitude, err)
			return SunEvents{}, fmt.Errorf("sunEvents → %w", err)
		}
		return events, nil
	})
}

func (p *CelestialEventProjector) searchSunEvents(date NaturalDate, latitude float64) (SunEvents, error) {
	observer := Observer{Latitude: latitude, Longitude: date.Longitude}

	rise, set := 180.0, 180.0
	if isSummer(date.DayOfYear, latitude) {
		rise, set = 0, 360
	}

	var events SunEvents
	searches := []struct {
		dst       *float64
		direction Direction
		altitude  float64
		horizon   bool
		fallback  float64
	}{
		{&events.Sunrise, Rising, 0, true, rise},
		{&events.Sunset, Setting, 0, true, set},
		{&events.NightEnd, Rising, nightAltitude, false, rise},
		{&events.NightStart, Setting, nightAltitude, false, set},
		{&events.MorningGoldenHour, Rising, goldenHourAltitude, false, rise},
		{&events.EveningGoldenHour, Setting, goldenHourAltitude, false, set},
	}

	for _, s := range searches {
		at, found, err := p.searchSun(observer, s.direction, s.horizon, s.altitude, date.Nadir)
		if err != nil {
			return SunEvents{}, err
		}

		*s.dst = s.fallback
		if found {
			*s.dst = date.TimeOf(at).Or(s.fallback)
		}
	}

	return events, nil
}

func (p *CelestialEventProjector) searchSun(observer Observer, direction Direction, horizon bool, altitude float64, start time.Time) (time.Time, bool, error) {
	if horizon {
		return p.ephemeris.SearchRiseSet(Sun, observer, direction, start, 1)
	}
	return p.ephemeris.SearchAltitude(Sun, observer, direction, start, 1, altitude)
}

// SunAltitude reports how high the sun stands at the date's instant, never
// below 0, and the altitude of its culmination during the natural day.
func (p *CelestialEventProjector) SunAltitude(date NaturalDate, latitude float64) (SunAltitude, error) {
	if err := p.validate(date, latitude); err != nil {
		return SunAltitude{}, err
	}

	altitude, highest, err := p.altitudes(Sun, date, latitude)
	if err != nil {
		p.logFailure("sunAltitude", date, latitude, err)
		return SunAltitude{}, fmt.Errorf("sunAltitude → %w", err)
	}

	return SunAltitude{Altitude: altitude, HighestAltitude: highest}, nil
}

func (p *CelestialEventProjector) MoonPosition(date NaturalDate, latitude float64) (MoonPosition, error) {
	if err := p.validate(date, latitude); err != nil {
		return MoonPosition{}, err
	}

	phase, err := p.ephemeris.MoonPhase(date.UnixTime)
	if err != nil {
		p.logFailure("moonPosition", date, latitude, err)
		return MoonPosition{}, fmt.Errorf("moonPosition → %w", err)
	}

	altitude, highest, err := p.altitudes(Moon, date, latitude)
	if err != nil {
		p.logFailure("moonPosition", date, latitude, err)
		return MoonPosition{}, fmt.Errorf("moonPosition → %w", err)
	}

	return MoonPosition{Phase: phase, Altitude: altitude, HighestAltitude: highest}, nil
}

func (p *CelestialEventProjector) altitudes(body Body, date NaturalDate, latitude float64) (altitude float64, highest float64, err error) {
	observer := Observer{Latitude: latitude, Longitude: date.Longitude}

	position, err := p.ephemeris.EquatorialPosition(body, date.UnixTime, observer)
	if err != nil {
		return 0, 0, err
	}
	altitude = math.Max(0, p.ephemeris.HorizonAltitude(date.UnixTime, observer, position))

	culmination, err := p.ephemeris.SearchHourAngle(body, observer, 0, date.Nadir)
	if err != nil {
		return 0, 0, err
	}

	return altitude, culmination.Altitude, nil
}

// MoonEvents has no seasonal fallback: a rise or set the moon skips during the
// natural day does not occur.
func (p *CelestialEventProjector) MoonEvents(date NaturalDate, latitude float64) (MoonEvents, error) {
	if err := p.validate(date, latitude); err != nil {
		return MoonEvents{}, err
	}

	key := eventKey{day: date.DayIdentity(), latitude: latitude, longitude: date.Longitude}
	return p.moon.getOrCompute(key, func() (MoonEvents, error) {
		events, err := p.searchMoonEvents(date, latitude)
		if err != nil {
			p.logFailure("moonEvents", date, latitude, err)
			return MoonEvents{}, fmt.Errorf("moonEvents → %w", err)
		}
		return events, nil
	})
}

func (p *CelestialEventProjector) searchMoonEvents(date NaturalDate, latitude float64) (MoonEvents, error) {
	observer := Observer{Latitude: latitude, Longitude: date.Longitude}
	events := MoonEvents{Moonrise: DoesNotOccur, Moonset: DoesNotOccur}

	rise, found, err := p.ephemeris.SearchRiseSet(Moon, observer, Rising, date.Nadir, 1)
	if err != nil {
		return MoonEvents{}, err
	}
	if found {
		events.Moonrise = date.TimeOf(rise)
	}

	set, found, err := p.ephemeris.SearchRiseSet(Moon, observer, Setting, date.Nadir, 1)
	if err != nil {
		return MoonEvents{}, err
	}
	if found {
		events.Moonset = date.TimeOf(set)
	}

	culmination, err := p.ephemeris.SearchHourAngle(Moon, observer, 0, date.Nadir)
	if err != nil {
		return MoonEvents{}, err
	}
	events.Culmination = date.TimeOf(culmination.Time)
	events.HighestAltitude = culmination.Altitude

	return events, nil
}

// MustachesRange compares the sunrises and sunsets of the June and December
// solstices of the date's gregorian year at latitude. Solstice days are taken
// at longitude 0, so the result depends on the gregorian year and the latitude
// only.
func (p *CelestialEventProjector) MustachesRange(date NaturalDate, latitude float64) (MustachesRange, error) {
	if err := p.validate(date, latitude); err != nil {
		return MustachesRange{}, err
	}

	year := date.UnixTime.UTC().Year()
	return p.mustaches.getOrCompute(mustacheKey{year: year, latitude: latitude}, func() (MustachesRange, error) {
		r, err := p.computeMustaches(year, latitude)
		if err != nil {
			p.logFailure("mustachesRange", date, latitude, err)
			return MustachesRange{}, fmt.Errorf("mustachesRange → %w", err)
		}
		return r, nil
	})
}

func (p *CelestialEventProjector) computeMustaches(year int, latitude float64) (MustachesRange, error) {
	seasons, err := p.ephemeris.Seasons(year)
	if err != nil {
		return MustachesRange{}, err
	}

	winterDate, err := p.engine.Compute(seasons.DecemberSolstice, 0)
	if err != nil {
		return MustachesRange{}, err
	}
	summerDate, err := p.engine.Compute(seasons.JuneSolstice, 0)
	if err != nil {
		return MustachesRange{}, err
	}

	winter, err := p.SunEvents(winterDate, latitude)
	if err != nil {
		return MustachesRange{}, err
	}
	summer, err := p.SunEvents(summerDate, latitude)
	if err != nil {
		return MustachesRange{}, err
	}

	spread := (winter.Sunrise - summer.Sunrise) + (summer.Sunset - winter.Sunset)
	if latitude < 0 {
		spread = -spread
	}

	return MustachesRange{
		WinterSunrise:        winter.Sunrise,
		WinterSunset:         winter.Sunset,
		SummerSunrise:        summer.Sunrise,
		SummerSunset:         summer.Sunset,
		AverageMustacheAngle: math.Min(90, math.Max(0, spread/4)),
	}, nil
}

func (p *CelestialEventProjector) Purge() {
	p.sun.purge()
	p.moon.purge()
	p.mustaches.purge()
}

func (p *CelestialEventProjector) validate(date NaturalDate, latitude float64) error {
	if err := validateLatitude(latitude); err != nil {
		return err
	}
	return date.Validate()
}

func (p *CelestialEventProjector) logFailure(operation string, date NaturalDate, latitude float64, err error) {
	p.logger.Errorw("ephemeris search failed",
		"operation", operation,
		"date", date.DayIdentity(),
		"latitude", latitude,
		"longitude", date.Longitude,
		"error", err,
	)
}

// isSummer approximates local summer by day of the natural year: the northern
// summer runs between the equinox days 91 and 273, the southern one outside it.
func isSummer(dayOfYear int, latitude float64) bool {
	northern := dayOfYear > summerStartDay && dayOfYear < summerEndDay
	if latitude >= 0 {
		return northern
	}
	return !northern
}
