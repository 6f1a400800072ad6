// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

// Package log builds the zap logger shared by the daemon and the CLI.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a development logger when debug is set and a production one otherwise.
func New(debug bool) (*zap.SugaredLogger, error) {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %v", err)
	}

	return zapLogger.Sugar(), nil
}

// Must is New for program entry points, falling back to a no-op logger.
func Must(debug bool) *zap.SugaredLogger {
	logger, err := New(debug)
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
