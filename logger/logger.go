// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured logger based on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to the given writer with
// the given textual level (debug, info, warn, error).
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(logHandler), nil
}

// ExitWithError exits the process with the given code on deferred cleanup.
// It allows main functions to run deferred statements before exiting.
func ExitWithError(code *int) {
	if *code != 0 {
		os.Exit(*code)
	}
}
