// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"math"
	"time"

	"github.com/GetSky/NaturalTime/internal/application"
	"github.com/sixdouglas/suncalc"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/deltat"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/meeus/v3/solstice"
	"github.com/soniakeys/unit"
)

// Range of the solstice and equinox tables (Meeus, chapter 27).
const (
	MinSupportedYear = -1000
	MaxSupportedYear = 3000
)

const (
	// Upper limb on the horizon with standard refraction.
	horizonAltitude = -0.8333

	earthRadiusKm = 6378.14
	sunDistanceKm = 149597870.7

	scanStep        = 10 * time.Minute
	searchPrecision = time.Second
	hourAngleWindow = 2 * 24 * time.Hour

	j2000             = 2451545.0
	daysPerJulianYear = 365.25
)

type ephemerisService struct {
}

func NewEphemerisService() application.Ephemeris {
	return &ephemerisService{}
}

func (e *ephemerisService) Seasons(year int) (application.Seasons, error) {
	if year < MinSupportedYear || year > MaxSupportedYear {
		return application.Seasons{}, unsupportedEra(year)
	}

	return application.Seasons{
		MarchEquinox:     universal(solstice.March(year)),
		JuneSolstice:     universal(solstice.June(year)),
		SeptemberEquinox: universal(solstice.September(year)),
		DecemberSolstice: universal(solstice.December(year)),
	}, nil
}

func (e *ephemerisService) EquatorialPosition(body application.Body, t time.Time, _ application.Observer) (application.Equatorial, error) {
	if err := checkEra(t); err != nil {
		return application.Equatorial{}, err
	}
	jde := dynamical(t)

	switch body {
	case application.Sun:
		α, δ := solar.ApparentEquatorial(jde)
		return application.Equatorial{
			RightAscension: radToDeg(float64(α)),
			Declination:    radToDeg(float64(δ)),
			Distance:       sunDistanceKm,
		}, nil
	case application.Moon:
		λ, β, Δ := moonposition.Position(jde)
		ε := nutation.MeanObliquity(jde)
		α, δ := coord.EclToEq(λ, β, ε.Sin(), ε.Cos())
		return application.Equatorial{
			RightAscension: radToDeg(float64(α)),
			Declination:    radToDeg(float64(δ)),
			Distance:       Δ,
		}, nil
	}

	return application.Equatorial{}, fmt.Errorf("ephemerisService → unknown body %d", body)
}

// HorizonAltitude returns the topocentric altitude in degrees, corrected for
// the parallax of nearby bodies.
func (e *ephemerisService) HorizonAltitude(t time.Time, observer application.Observer, position application.Equatorial) float64 {
	h := geocentricAltitude(hourAngle(t, observer, position), observer, position)
	if position.Distance > 0 {
		h -= math.Asin(earthRadiusKm / position.Distance * math.Cos(h))
	}
	return radToDeg(h)
}

func (e *ephemerisService) SearchRiseSet(body application.Body, observer application.Observer, direction application.Direction, start time.Time, limitDays float64) (time.Time, bool, error) {
	return e.SearchAltitude(body, observer, direction, start, limitDays, horizonAltitude)
}

// SearchAltitude scans the window in coarse steps for the first crossing of
// altitude in the given direction, then bisects it down to a second.
func (e *ephemerisService) SearchAltitude(body application.Body, observer application.Observer, direction application.Direction, start time.Time, limitDays float64, altitude float64) (time.Time, bool, error) {
	end := start.Add(time.Duration(limitDays * float64(24*time.Hour)))

	above := func(t time.Time) (float64, error) {
		position, err := e.EquatorialPosition(body, t, observer)
		if err != nil {
			return 0, err
		}
		return (e.HorizonAltitude(t, observer, position) - altitude) * float64(direction), nil
	}

	prev := start
	fPrev, err := above(prev)
	if err != nil {
		return time.Time{}, false, err
	}
	for prev.Before(end) {
		next := prev.Add(scanStep)
		if next.After(end) {
			next = end
		}
		fNext, err := above(next)
		if err != nil {
			return time.Time{}, false, err
		}
		if fPrev < 0 && fNext >= 0 {
			at, err := bisect(above, prev, next)
			return at, err == nil, err
		}
		prev, fPrev = next, fNext
	}

	return time.Time{}, false, nil
}

// SearchHourAngle finds the first instant after start at which the body's
// local hour angle equals hourAngle degrees. Zero is the upper culmination.
func (e *ephemerisService) SearchHourAngle(body application.Body, observer application.Observer, target float64, start time.Time) (application.HourAngleEvent, error) {
	offset := func(t time.Time) (float64, error) {
		position, err := e.EquatorialPosition(body, t, observer)
		if err != nil {
			return 0, err
		}
		return normalize180(radToDeg(hourAngle(t, observer, position)) - target), nil
	}

	end := start.Add(hourAngleWindow)
	prev := start
	fPrev, err := offset(prev)
	if err != nil {
		return application.HourAngleEvent{}, err
	}
	for prev.Before(end) {
		next := prev.Add(scanStep)
		fNext, err := offset(next)
		if err != nil {
			return application.HourAngleEvent{}, err
		}
		// A jump from +180 to -180 is the wrap opposite the target, not a crossing.
		if fPrev < 0 && fNext >= 0 && fNext-fPrev < 90 {
			at, err := bisect(offset, prev, next)
			if err != nil {
				return application.HourAngleEvent{}, err
			}
			position, err := e.EquatorialPosition(body, at, observer)
			if err != nil {
				return application.HourAngleEvent{}, err
			}
			return application.HourAngleEvent{
				Time:     at,
				Altitude: e.HorizonAltitude(at, observer, position),
			}, nil
		}
		prev, fPrev = next, fNext
	}

	return application.HourAngleEvent{}, fmt.Errorf("ephemerisService → %s never reached hour angle %.1f° after %s", body, target, start.Format(time.RFC3339))
}

// MoonPhase is the sun-moon elongation in degrees: 0 new, 90 first quarter,
// 180 full, 270 last quarter.
func (e *ephemerisService) MoonPhase(t time.Time) (float64, error) {
	if err := checkEra(t); err != nil {
		return 0, err
	}
	illumination := suncalc.GetMoonIllumination(t.UTC())
	return normalize360(illumination.Phase * 360), nil
}

func bisect(f func(time.Time) (float64, error), lo, hi time.Time) (time.Time, error) {
	for hi.Sub(lo) > searchPrecision {
		mid := lo.Add(hi.Sub(lo) / 2)
		v, err := f(mid)
		if err != nil {
			return time.Time{}, err
		}
		if v < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo.Add(hi.Sub(lo) / 2), nil
}

func hourAngle(t time.Time, observer application.Observer, position application.Equatorial) float64 {
	jd := julian.TimeToJD(t.UTC())
	lst := sidereal.Apparent(jd).Angle() + unit.AngleFromDeg(observer.Longitude)
	return (lst - unit.AngleFromDeg(position.RightAscension)).Rad()
}

func geocentricAltitude(h float64, observer application.Observer, position application.Equatorial) float64 {
	φ := degToRad(observer.Latitude)
	δ := degToRad(position.Declination)
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(h)
	return math.Asin(math.Max(-1, math.Min(1, sinAlt)))
}

// universal turns a dynamical-time JDE into a UTC instant.
func universal(jde float64) time.Time {
	return julian.JDToTime(jde - deltaT(jde).Day()).UTC()
}

// dynamical returns the JDE of a UTC instant.
func dynamical(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	return jd + deltaT(jd).Day()
}

// deltaT is TT − UT from the meeus approximation valid for the epoch.
func deltaT(jd float64) unit.Time {
	year := 2000 + (jd-j2000)/daysPerJulianYear
	switch {
	case year < 948:
		return deltat.PolyBefore948(year)
	case year < 1620:
		return deltat.Poly948to1600(year)
	case year <= 2010:
		return deltat.Interp10A(jd)
	}
	return deltat.PolyAfter2000(year)
}

func checkEra(t time.Time) error {
	if y := t.UTC().Year(); y < MinSupportedYear || y > MaxSupportedYear {
		return unsupportedEra(y)
	}
	return nil
}

func unsupportedEra(year int) error {
	return &application.UnsupportedEraError{Year: year, Min: MinSupportedYear, Max: MaxSupportedYear}
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

func normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func normalize180(a float64) float64 {
	a = normalize360(a)
	if a >= 180 {
		a -= 360
	}
	return a
}
