package application

import "time"

type Body int

const (
	Sun Body = iota
	Moon
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	}
	return "unknown"
}

// Direction selects which horizon crossing a search looks for.
type Direction int

const (
	Rising  Direction = +1
	Setting Direction = -1
)

type Observer struct {
	Latitude  float64
	Longitude float64
	Height    float64
}

// Equatorial is an apparent geocentric position. Angles are in degrees.
type Equatorial struct {
	RightAscension float64
	Declination    float64
	Distance       float64 // km
}

type HourAngleEvent struct {
	Time     time.Time
	Altitude float64
}

type Seasons struct {
	MarchEquinox     time.Time
	JuneSolstice     time.Time
	SeptemberEquinox time.Time
	DecemberSolstice time.Time
}

// Ephemeris is the celestial-mechanics oracle. Implementations must be
// deterministic for identical inputs. A search that finds no event inside its
// window reports found == false and a nil error.
type Ephemeris interface {
	Seasons(year int) (Seasons, error)
	EquatorialPosition(body Body, t time.Time, observer Observer) (Equatorial, error)
	HorizonAltitude(t time.Time, observer Observer, position Equatorial) float64
	SearchRiseSet(body Body, observer Observer, direction Direction, start time.Time, limitDays float64) (t time.Time, found bool, err error)
	SearchAltitude(body Body, observer Observer, direction Direction, start time.Time, limitDays float64, altitude float64) (t time.Time, found bool, err error)
	SearchHourAngle(body Body, observer Observer, hourAngle float64, start time.Time) (HourAngleEvent, error)
	MoonPhase(t time.Time) (float64, error)
}

type NotifyService interface {
	SendDayStarted(date NaturalDate, sun SunEvents) error
	SendNightStarted(date NaturalDate, sun SunEvents) error
	SendSummary(date NaturalDate, sun SunEvents, moon MoonEvents) error
}

type ClockService interface {
	Now() time.Time
}
