// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"github.com/GetSky/NaturalTime/internal/application"
	"go.uber.org/zap"
)

type logNotifyService struct {
	logger *zap.SugaredLogger
}

// NewLogNotifyService writes notifications to the log when no chat is configured.
func NewLogNotifyService(logger *zap.SugaredLogger) application.NotifyService {
	return &logNotifyService{logger: logger}
}

func (l *logNotifyService) SendDayStarted(date application.NaturalDate, sun application.SunEvents) error {
	l.logger.Infow("day started",
		"date", date.String(),
		"sunrise", sun.Sunrise,
		"sunset", sun.Sunset,
	)
	return nil
}

func (l *logNotifyService) SendNightStarted(date application.NaturalDate, sun application.SunEvents) error {
	l.logger.Infow("night started",
		"date", date.String(),
		"nightStart", sun.NightStart,
		"nightEnd", sun.NightEnd,
	)
	return nil
}

func (l *logNotifyService) SendSummary(date application.NaturalDate, sun application.SunEvents, moon application.MoonEvents) error {
	l.logger.Infow("natural time",
		"date", date.String(),
		"day", date.Day,
		"sunrise", sun.Sunrise,
		"sunset", sun.Sunset,
		"moonrise", moon.Moonrise.String(),
		"moonset", moon.Moonset.String(),
	)
	return nil
}
