// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

// Package logging wraps zerolog for CoolerSelect.
//
// main configures the process logger once through Init. Long-lived
// components (engine, importer, selection cache) are handed a zerolog.Logger
// at construction; request handlers log through Ctx so that every line of a
// request carries its request_id.
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Version: api.Version})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Selection failed")
//
// Event chains must end in .Msg() or .Send().
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every line written by the process logger.
const ServiceName = "coolerselect"

// Config describes the process logger.
type Config struct {
	// Level: trace, debug, info, warn, error, fatal, panic or disabled.
	// Unknown values log at info.
	Level string

	// Format is "json" (default) or "console".
	Format string

	// Caller adds file:line to each line.
	Caller bool

	// Version, when set, is added as a base field.
	Version string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig is what the package uses before Init runs.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var current atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // packages log before main calls Init
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"
	Init(DefaultConfig())
}

// Init builds the process logger from cfg and installs it. It may be called
// again, as tests do, to redirect output.
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	l := build(cfg)
	current.Store(&l)
}

func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).With().Timestamp().Str("service", ServiceName)
	if cfg.Version != "" {
		zctx = zctx.Str("version", cfg.Version)
	}
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return zctx.Logger()
}

// parseLevel accepts zerolog's names plus "warning", case-insensitively.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return zerolog.WarnLevel
	}
	if level == "" {
		return zerolog.InfoLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Logger returns a copy of the process logger.
func Logger() zerolog.Logger {
	return *current.Load()
}

// SetLogger swaps the process logger; tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func SetLogger(l zerolog.Logger) {
	current.Store(&l)
}

// WithComponent tags a child of the process logger with component=name.
func WithComponent(name string) zerolog.Logger {
	return current.Load().With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return current.Load().Debug() }

func Info() *zerolog.Event { return current.Load().Info() }

func Warn() *zerolog.Event { return current.Load().Warn() }

func Error() *zerolog.Event { return current.Load().Error() }

// Fatal exits the process with status 1 after the event is written.
func Fatal() *zerolog.Event { return current.Load().Fatal() }

// NewTestLogger writes JSON lines to w with no base fields, so tests can
// assert on exact output.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
