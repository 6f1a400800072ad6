// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"

	"go.uber.org/zap"
)

type State interface {
	check(date NaturalDate, sun SunEvents) error
	SetTracker(tracker *SkyTracker)
}

// SkyTracker follows the sun at one observer and reports every crossing
// between daylight and night.
type SkyTracker struct {
	daylight State
	night    State

	currentState State

	clock     ClockService
	engine    *NaturalDateEngine
	projector *CelestialEventProjector
	notifySrv NotifyService
	observer  Observer
	logger    *zap.SugaredLogger
}

func NewSkyTracker(
	daylight State,
	night State,
	clock ClockService,
	engine *NaturalDateEngine,
	projector *CelestialEventProjector,
	notify NotifyService,
	observer Observer,
	logger *zap.SugaredLogger,
) *SkyTracker {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	t := &SkyTracker{
		daylight:  daylight,
		night:     night,
		clock:     clock,
		engine:    engine,
		projector: projector,
		notifySrv: notify,
		observer:  observer,
		logger:    logger,
	}
	daylight.SetTracker(t)
	night.SetTracker(t)
	t.switchState(night)
	return t
}

func (t *SkyTracker) switchState(s State) {
	t.currentState = s
}

func (t *SkyTracker) IsDaylight() bool {
	return t.currentState == t.daylight
}

func (t *SkyTracker) Check() {
	if err := t.check(); err != nil {
		t.logger.Errorw("tracker check failed", "error", err)
	}
}

func (t *SkyTracker) check() error {
	date, sun, err := t.now()
	if err != nil {
		return err
	}
	return t.currentState.check(date, sun)
}

// Report sends the natural time, sun and moon events of the current natural day.
func (t *SkyTracker) Report() {
	if err := t.report(); err != nil {
		t.logger.Errorw("tracker report failed", "error", err)
	}
}

func (t *SkyTracker) report() error {
	date, sun, err := t.now()
	if err != nil {
		return err
	}
	moon, err := t.projector.MoonEvents(date, t.observer.Latitude)
	if err != nil {
		return fmt.Errorf("Tracker → %w", err)
	}
	return t.notifySrv.SendSummary(date, sun, moon)
}

func (t *SkyTracker) now() (NaturalDate, SunEvents, error) {
	date, err := t.engine.Compute(t.clock.Now(), t.observer.Longitude)
	if err != nil {
		return NaturalDate{}, SunEvents{}, fmt.Errorf("Tracker → %w", err)
	}
	sun, err := t.projector.SunEvents(date, t.observer.Latitude)
	if err != nil {
		return NaturalDate{}, SunEvents{}, fmt.Errorf("Tracker → %w", err)
	}
	return date, sun, nil
}

// isDaylight treats a polar day (0°..360°) as always light and a polar night
// (180°..180°) as never light.
func isDaylight(date NaturalDate, sun SunEvents) bool {
	return date.Time >= sun.Sunrise && date.Time < sun.Sunset
}

type DaylightState struct {
	tracker   *SkyTracker
	notifySrv NotifyService
}

func NewDaylightState(notify NotifyService) *DaylightState {
	return &DaylightState{notifySrv: notify}
}

func (s *DaylightState) SetTracker(tracker *SkyTracker) {
	s.tracker = tracker
}

func (s *DaylightState) check(date NaturalDate, sun SunEvents) error {
	if isDaylight(date, sun) {
		return nil
	}

	if err := s.notifySrv.SendNightStarted(date, sun); err != nil {
		return err
	}
	s.tracker.logger.Infow("night started", "date", date.String())
	s.tracker.switchState(s.tracker.night)

	return nil
}

type NightState struct {
	tracker   *SkyTracker
	notifySrv NotifyService
}

func NewNightState(notify NotifyService) *NightState {
	return &NightState{notifySrv: notify}
}

func (s *NightState) SetTracker(tracker *SkyTracker) {
	s.tracker = tracker
}

func (s *NightState) check(date NaturalDate, sun SunEvents) error {
	if !isDaylight(date, sun) {
		return nil
	}

	if err := s.notifySrv.SendDayStarted(date, sun); err != nil {
		return err
	}
	s.tracker.logger.Infow("day started", "date", date.String())
	s.tracker.switchState(s.tracker.daylight)

	return nil
}
