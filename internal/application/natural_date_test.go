package application

import (
	"errors"
	"testing"
	"time"
)

func TestNaturalDateFormatting(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		instant  time.Time
		identity string
		text     string
	}{
		{time.Date(2013, 6, 15, 12, 0, 0, 0, time.UTC), "1/7/8", "001)07)08 180.0°"},
		{time.Date(2013, 1, 1, 6, 0, 0, 0, time.UTC), "1/1/11", "001)01)11 090.0°"},
		{time.Date(2013, 12, 21, 18, 0, 0, 0, time.UTC), "1/RAINBOW", "001)RAINBOW 270.0°"},
		{time.Date(2013, 12, 22, 3, 0, 0, 0, time.UTC), "1/RAINBOW+", "001)RAINBOW+ 045.0°"},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			date := mustCompute(t, engine, tt.instant, 0)
			if got := date.DayIdentity(); got != tt.identity {
				t.Errorf("DayIdentity = %q, expected %q", got, tt.identity)
			}
			if got := date.String(); got != tt.text {
				t.Errorf("String = %q, expected %q", got, tt.text)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	engine, _ := newTestEngine(t)

	morning := mustCompute(t, engine, time.Date(2013, 6, 15, 1, 0, 0, 0, time.UTC), 0)
	evening := mustCompute(t, engine, time.Date(2013, 6, 15, 23, 0, 0, 0, time.UTC), 0)
	tomorrow := mustCompute(t, engine, time.Date(2013, 6, 16, 1, 0, 0, 0, time.UTC), 0)
	elsewhere := mustCompute(t, engine, time.Date(2013, 6, 15, 23, 0, 0, 0, time.UTC), 30)

	if !morning.IsSameDay(evening) {
		t.Error("morning and evening are different days")
	}
	if morning.IsSameDay(tomorrow) {
		t.Error("today and tomorrow are the same day")
	}
	if evening.IsSameDay(elsewhere) {
		t.Error("different longitudes share a day")
	}
}

func TestTimeOf(t *testing.T) {
	engine, _ := newTestEngine(t)
	date := mustCompute(t, engine, time.Date(2013, 6, 15, 12, 0, 0, 0, time.UTC), 0)

	tests := []struct {
		name   string
		event  time.Time
		value  float64
		occurs bool
	}{
		{"nadir", date.Nadir, 0, true},
		{"quarter", date.Nadir.Add(6 * time.Hour), 90, true},
		{"next nadir", date.Nadir.Add(DayLength), 360, true},
		{"before nadir", date.Nadir.Add(-time.Second), 0, false},
		{"after the day", date.Nadir.Add(DayLength + time.Second), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := date.TimeOf(tt.event)
			v, ok := got.Value()
			if ok != tt.occurs || (ok && !almostEqual(v, tt.value)) {
				t.Errorf("TimeOf = %s, expected occurs=%v value=%.1f", got, tt.occurs, tt.value)
			}
			if engine.ProjectEvent(date, tt.event) != got {
				t.Error("ProjectEvent disagrees with TimeOf")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	engine, _ := newTestEngine(t)
	valid := mustCompute(t, engine, time.Date(2013, 6, 15, 12, 0, 0, 0, time.UTC), 0)
	if err := valid.Validate(); err != nil {
		t.Fatalf("computed date fails validation: %v", err)
	}

	tests := []struct {
		field  string
		mutate func(*NaturalDate)
	}{
		{"UnixTime", func(d *NaturalDate) { d.UnixTime = time.Time{} }},
		{"Longitude", func(d *NaturalDate) { d.Longitude = 200 }},
		{"Moon", func(d *NaturalDate) { d.Moon = 15 }},
		{"DayOfMoon", func(d *NaturalDate) { d.DayOfMoon = 0 }},
		{"DayOfWeek", func(d *NaturalDate) { d.DayOfWeek = 8 }},
		{"IsRainbowDay", func(d *NaturalDate) { d.IsRainbowDay = true }},
		{"Moon", func(d *NaturalDate) { d.Moon = 14 }},
		{"YearDuration", func(d *NaturalDate) { d.YearDuration = 300 }},
		{"Time", func(d *NaturalDate) { d.Time = 360 }},
		{"Time", func(d *NaturalDate) { d.Time = -1 }},
		{"Nadir", func(d *NaturalDate) { d.Nadir = d.Nadir.Add(DayLength) }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			date := valid
			tt.mutate(&date)

			err := date.Validate()
			var dateErr *InvalidNaturalDateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("got %v, expected InvalidNaturalDateError", err)
			}
			if dateErr.Field != tt.field {
				t.Errorf("Field = %s, expected %s", dateErr.Field, tt.field)
			}
		})
	}
}

func TestDegrees(t *testing.T) {
	if DoesNotOccur.Occurs() {
		t.Error("DoesNotOccur occurs")
	}
	if got := DoesNotOccur.String(); got != "-" {
		t.Errorf("String = %q, expected %q", got, "-")
	}
	if got := DoesNotOccur.Or(180); got != 180 {
		t.Errorf("Or = %.1f, expected the fallback", got)
	}
	if got := Occurs(12.34).String(); got != "12.3°" {
		t.Errorf("String = %q, expected %q", got, "12.3°")
	}
	if got := Occurs(0).Or(180); got != 0 {
		t.Errorf("Or = %.1f on an event at nadir, expected 0", got)
	}
}
