// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"math"
)

// InvalidLongitudeError is returned when a longitude is not a finite number in [-180, 180].
type InvalidLongitudeError struct {
	Value float64
}

func (e *InvalidLongitudeError) Error() string {
	return fmt.Sprintf("invalid longitude: got %v, expected a finite number in [-180, 180]", e.Value)
}

// InvalidLatitudeError is returned when a latitude is not a finite number in [-90, 90].
type InvalidLatitudeError struct {
	Value float64
}

func (e *InvalidLatitudeError) Error() string {
	return fmt.Sprintf("invalid latitude: got %v, expected a finite number in [-90, 90]", e.Value)
}

// InvalidInstantError is returned when an instant cannot be turned into a finite absolute time.
type InvalidInstantError struct {
	Value string
	Err   error
}

func (e *InvalidInstantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid instant: got %q, expected RFC3339 time or unix milliseconds: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid instant: got %q, expected RFC3339 time or unix milliseconds", e.Value)
}

func (e *InvalidInstantError) Unwrap() error {
	return e.Err
}

// InvalidNaturalDateError is returned when a NaturalDate fails structural validation.
type InvalidNaturalDateError struct {
	Field    string
	Value    any
	Expected string
}

func (e *InvalidNaturalDateError) Error() string {
	return fmt.Sprintf("invalid natural date: field %s got %v, expected %s", e.Field, e.Value, e.Expected)
}

// UnsupportedEraError is returned when the ephemeris has no season data for a year.
type UnsupportedEraError struct {
	Year     int
	Min, Max int
}

func (e *UnsupportedEraError) Error() string {
	return fmt.Sprintf("unsupported era: year %d, expected a gregorian year in [%d, %d]", e.Year, e.Min, e.Max)
}

func validateLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return &InvalidLongitudeError{Value: longitude}
	}
	return nil
}

func validateLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return &InvalidLatitudeError{Value: latitude}
	}
	return nil
}

// ValidateLocation checks an observer position, latitude first.
func ValidateLocation(latitude, longitude float64) error {
	if err := validateLatitude(latitude); err != nil {
		return err
	}
	return validateLongitude(longitude)
}
