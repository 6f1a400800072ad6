// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GetSky/NaturalTime/config"
	"github.com/GetSky/NaturalTime/internal/application"
	"github.com/GetSky/NaturalTime/internal/infrastructure"
	"github.com/GetSky/NaturalTime/internal/log"
	"github.com/go-co-op/gocron"
)

func main() {
	cnf, err := config.NewConf()
	if err != nil {
		fmt.Printf("Main → %v\n", err)
		os.Exit(1)
	}

	logger := log.Must(cnf.Debug)
	defer func() { _ = logger.Sync() }()

	engine, err := application.NewNaturalDateEngine(infrastructure.NewEphemerisService(), cnf.YearCacheSize)
	if err != nil {
		logger.Fatalw("failed to create engine", "error", err)
	}
	projector, err := application.NewCelestialEventProjector(engine, logger, cnf.EventCacheSize)
	if err != nil {
		logger.Fatalw("failed to create projector", "error", err)
	}

	notifySrv := infrastructure.NewLogNotifyService(logger)
	if cnf.HasTelegram() {
		notifySrv, err = infrastructure.NewTelegramNotifyService(cnf.BotToken, cnf.TelegramChat)
		if err != nil {
			logger.Fatalw("failed to create notifier", "error", err)
		}
	}

	tracker := application.NewSkyTracker(
		application.NewDaylightState(notifySrv),
		application.NewNightState(notifySrv),
		infrastructure.NewClockService(cnf.ClockOffset),
		engine,
		projector,
		notifySrv,
		cnf.Observer(),
		logger,
	)

	s := gocron.NewScheduler(time.UTC)
	if _, err = s.Every(cnf.PollInterval).Do(tracker.Check); err != nil {
		logger.Fatalw("failed to schedule tracker", "error", err)
	}
	if _, err = s.Cron(cnf.SummaryCron).Do(tracker.Report); err != nil {
		logger.Fatalw("failed to schedule summary", "error", err, "cron", cnf.SummaryCron)
	}

	logger.Infow("tracking the sky",
		"latitude", cnf.Latitude,
		"longitude", cnf.Longitude,
		"pollInterval", cnf.PollInterval,
	)
	s.StartBlocking()
}
