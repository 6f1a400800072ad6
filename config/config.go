// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package config

import (
	"fmt"
	"time"

	"github.com/GetSky/NaturalTime/internal/application"
	"github.com/caarlos0/env/v11"
)

type Conf struct {
	Latitude  float64 `env:"LATITUDE,required"`
	Longitude float64 `env:"LONGITUDE,required"`

	BotToken     string `env:"BOT_TOKEN"`
	TelegramChat string `env:"TELEGRAM_CHAT_ID"`

	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	SummaryCron  string        `env:"SUMMARY_CRON" envDefault:"0 * * * *"`
	ClockOffset  time.Duration `env:"CLOCK_OFFSET" envDefault:"0s"`

	YearCacheSize  int `env:"YEAR_CACHE_SIZE" envDefault:"256"`
	EventCacheSize int `env:"EVENT_CACHE_SIZE" envDefault:"4096"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

func NewConf() (*Conf, error) {
	cnf := &Conf{}
	if err := env.Parse(cnf); err != nil {
		return nil, fmt.Errorf("error on parse env config: %w", err)
	}
	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return cnf, nil
}

func (c *Conf) Validate() error {
	if err := application.ValidateLocation(c.Latitude, c.Longitude); err != nil {
		return fmt.Errorf("config → %w", err)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config → invalid POLL_INTERVAL: got %s, expected a positive duration", c.PollInterval)
	}
	return nil
}

// HasTelegram reports whether notifications can be sent.
func (c *Conf) HasTelegram() bool {
	return c.BotToken != "" && c.TelegramChat != ""
}

func (c *Conf) Observer() application.Observer {
	return application.Observer{Latitude: c.Latitude, Longitude: c.Longitude}
}
