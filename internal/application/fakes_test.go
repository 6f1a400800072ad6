package application

import (
	"time"
)

// December solstices 2010-2026, UTC.
var decemberSolstices = map[int]time.Time{
	2010: time.Date(2010, 12, 21, 23, 38, 0, 0, time.UTC),
	2011: time.Date(2011, 12, 22, 5, 30, 0, 0, time.UTC),
	2012: time.Date(2012, 12, 21, 11, 12, 0, 0, time.UTC),
	2013: time.Date(2013, 12, 21, 17, 11, 0, 0, time.UTC),
	2014: time.Date(2014, 12, 21, 23, 3, 0, 0, time.UTC),
	2015: time.Date(2015, 12, 22, 4, 48, 0, 0, time.UTC),
	2016: time.Date(2016, 12, 21, 10, 44, 0, 0, time.UTC),
	2017: time.Date(2017, 12, 21, 16, 28, 0, 0, time.UTC),
	2018: time.Date(2018, 12, 21, 22, 23, 0, 0, time.UTC),
	2019: time.Date(2019, 12, 22, 4, 19, 0, 0, time.UTC),
	2020: time.Date(2020, 12, 21, 10, 2, 0, 0, time.UTC),
	2021: time.Date(2021, 12, 21, 15, 59, 0, 0, time.UTC),
	2022: time.Date(2022, 12, 21, 21, 48, 0, 0, time.UTC),
	2023: time.Date(2023, 12, 22, 3, 27, 0, 0, time.UTC),
	2024: time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC),
	2025: time.Date(2025, 12, 21, 15, 3, 0, 0, time.UTC),
	2026: time.Date(2026, 12, 21, 20, 50, 0, 0, time.UTC),
}

// sunDay places sunrise and sunset relative to the search start. ok == false
// means the sun does not cross the threshold that day.
type sunDay func(start time.Time, altitude float64) (rise, set time.Duration, ok bool)

// fakeEphemeris serves tabulated solstices and a scripted sun.
type fakeEphemeris struct {
	sun        sunDay
	moonRise   time.Duration
	moonSet    time.Duration
	moonFound  bool
	altitude   float64
	highest    float64
	phase      float64
	err        error
	seasons    int
	searches   int
	hourAngles int
}

func newFakeEphemeris() *fakeEphemeris {
	return &fakeEphemeris{
		sun: func(_ time.Time, altitude float64) (time.Duration, time.Duration, bool) {
			switch altitude {
			case nightAltitude:
				return 4 * time.Hour, 20 * time.Hour, true
			case goldenHourAltitude:
				return 7 * time.Hour, 17 * time.Hour, true
			}
			return 6 * time.Hour, 18 * time.Hour, true
		},
		moonRise:  3 * time.Hour,
		moonSet:   15 * time.Hour,
		moonFound: true,
		altitude:  30,
		highest:   45,
		phase:     90,
	}
}

func (f *fakeEphemeris) Seasons(year int) (Seasons, error) {
	f.seasons++
	december, ok := decemberSolstices[year]
	if !ok {
		return Seasons{}, &UnsupportedEraError{Year: year, Min: 2010, Max: 2026}
	}
	return Seasons{
		MarchEquinox:     time.Date(year, 3, 20, 12, 0, 0, 0, time.UTC),
		JuneSolstice:     time.Date(year, 6, 21, 6, 0, 0, 0, time.UTC),
		SeptemberEquinox: time.Date(year, 9, 22, 20, 0, 0, 0, time.UTC),
		DecemberSolstice: december,
	}, nil
}

func (f *fakeEphemeris) EquatorialPosition(body Body, t time.Time, observer Observer) (Equatorial, error) {
	if f.err != nil {
		return Equatorial{}, f.err
	}
	return Equatorial{RightAscension: 10, Declination: 20, Distance: 384400}, nil
}

func (f *fakeEphemeris) HorizonAltitude(t time.Time, observer Observer, position Equatorial) float64 {
	return f.altitude
}

func (f *fakeEphemeris) SearchRiseSet(body Body, observer Observer, direction Direction, start time.Time, limitDays float64) (time.Time, bool, error) {
	if body == Moon {
		f.searches++
		if f.err != nil {
			return time.Time{}, false, f.err
		}
		if !f.moonFound {
			return time.Time{}, false, nil
		}
		if direction == Rising {
			return start.Add(f.moonRise), true, nil
		}
		return start.Add(f.moonSet), true, nil
	}
	return f.SearchAltitude(body, observer, direction, start, limitDays, 0)
}

func (f *fakeEphemeris) SearchAltitude(body Body, observer Observer, direction Direction, start time.Time, limitDays float64, altitude float64) (time.Time, bool, error) {
	f.searches++
	if f.err != nil {
		return time.Time{}, false, f.err
	}
	rise, set, ok := f.sun(start, altitude)
	if !ok {
		return time.Time{}, false, nil
	}
	if direction == Rising {
		return start.Add(rise), true, nil
	}
	return start.Add(set), true, nil
}

func (f *fakeEphemeris) SearchHourAngle(body Body, observer Observer, hourAngle float64, start time.Time) (HourAngleEvent, error) {
	f.hourAngles++
	if f.err != nil {
		return HourAngleEvent{}, f.err
	}
	return HourAngleEvent{Time: start.Add(12 * time.Hour), Altitude: f.highest}, nil
}

func (f *fakeEphemeris) MoonPhase(t time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.phase, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeNotify struct {
	dayStarted   []NaturalDate
	nightStarted []NaturalDate
	summaries    []MoonEvents
	err          error
}

func (n *fakeNotify) SendDayStarted(date NaturalDate, sun SunEvents) error {
	if n.err != nil {
		return n.err
	}
	n.dayStarted = append(n.dayStarted, date)
	return nil
}

func (n *fakeNotify) SendNightStarted(date NaturalDate, sun SunEvents) error {
	if n.err != nil {
		return n.err
	}
	n.nightStarted = append(n.nightStarted, date)
	return nil
}

func (n *fakeNotify) SendSummary(date NaturalDate, sun SunEvents, moon MoonEvents) error {
	if n.err != nil {
		return n.err
	}
	n.summaries = append(n.summaries, moon)
	return nil
}
