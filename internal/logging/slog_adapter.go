// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler is an slog.Handler writing through zerolog. suture (via
// sutureslog) and watermill only accept *slog.Logger; this keeps their
// output in the service's JSON stream.
//
// Attributes bound with WithAttrs are rendered once into a child zerolog
// context instead of being replayed on every record.
type SlogHandler struct {
	logger zerolog.Logger
	prefix string // dotted group path, with trailing "."
}

// NewSlogHandler wraps logger.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns an *slog.Logger over the process logger.
//
//	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg)
//	bus := events.NewBus(watermill.NewSlogLogger(logging.NewSlogLogger()))
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler(Logger()))
}

func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := zerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

//nolint:gocritic // slog.Handler signature
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(record.Level))
	if event == nil {
		return nil
	}
	record.Attrs(func(a slog.Attr) bool {
		event = appendAttr(event, h.prefix, a)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	zctx := h.logger.With()
	for _, a := range attrs {
		zctx = zctx.Fields(flatten(nil, h.prefix, a))
	}
	return &SlogHandler{logger: zctx.Logger(), prefix: h.prefix}
}

func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

// flatten collects a (possibly grouped) attribute into dotted keys.
func flatten(into map[string]any, prefix string, a slog.Attr) map[string]any {
	if into == nil {
		into = make(map[string]any)
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			flatten(into, sub, ga)
		}
		return into
	}
	if a.Key == "" {
		return into
	}
	if err, ok := v.Any().(error); ok && v.Kind() == slog.KindAny {
		into[prefix+a.Key] = err.Error()
		return into
	}
	into[prefix+a.Key] = v.Any()
	return into
}

func appendAttr(event *zerolog.Event, prefix string, a slog.Attr) *zerolog.Event {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return event
	}
	key := prefix + a.Key
	switch v.Kind() {
	case slog.KindGroup:
		return event.Fields(flatten(nil, prefix, a))
	case slog.KindString:
		return event.Str(key, v.String())
	case slog.KindInt64:
		return event.Int64(key, v.Int64())
	case slog.KindUint64:
		return event.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		return event.Float64(key, v.Float64())
	case slog.KindBool:
		return event.Bool(key, v.Bool())
	case slog.KindDuration:
		return event.Dur(key, v.Duration())
	case slog.KindTime:
		return event.Time(key, v.Time())
	}
	if err, ok := v.Any().(error); ok {
		return event.AnErr(key, err)
	}
	return event.Interface(key, v.Any())
}

// zerologLevel maps slog's open-ended levels onto zerolog's.
func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}
