// Copyright 2026 The Vordr Gatekeeper Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates the CLI's structured logger. When stderr is a
// terminal it uses a text handler for human-readable output; when
// piped or redirected (CI, scripts) it uses a JSON handler for
// machine-parseable output.
func newLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
