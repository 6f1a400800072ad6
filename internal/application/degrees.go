// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import "fmt"

// Degrees is a position on the natural time-of-day scale, or the absence of
// an event within the natural day. The zero value does not occur.
type Degrees struct {
	value  float64
	occurs bool
}

var DoesNotOccur = Degrees{}

func Occurs(value float64) Degrees {
	return Degrees{value: value, occurs: true}
}

func (d Degrees) Value() (float64, bool) {
	return d.value, d.occurs
}

func (d Degrees) Occurs() bool {
	return d.occurs
}

// Or returns the degree value, or fallback when the event does not occur.
func (d Degrees) Or(fallback float64) float64 {
	if !d.occurs {
		return fallback
	}
	return d.value
}

func (d Degrees) String() string {
	if !d.occurs {
		return "-"
	}
	return fmt.Sprintf("%.1f°", d.value)
}
