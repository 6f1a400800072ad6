// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"time"

	"github.com/GetSky/NaturalTime/internal/application"
)

type clockService struct {
	offset time.Duration
}

// NewClockService returns the system clock, shifted by offset. A non-zero
// offset replays the sky of another moment.
func NewClockService(offset time.Duration) application.ClockService {
	return &clockService{offset: offset}
}

func (c *clockService) Now() time.Time {
	return time.Now().UTC().Add(c.offset)
}
