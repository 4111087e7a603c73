// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type scopeKey struct{}

// scope is the per-request logging state. A nil logger means "use the
// process logger at call time", so Init and SetLogger still take effect for
// requests already in flight.
type scope struct {
	requestID string
	logger    *zerolog.Logger
}

func scopeFrom(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}
	return scope{}
}

// GenerateRequestID returns a random UUID string.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID tags ctx with a request ID; Ctx adds it to every line.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = id
	return context.WithValue(ctx, scopeKey{}, s)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// ContextWithLogger pins a logger to ctx in place of the process logger.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = &logger
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithFields returns a context whose Ctx logger carries the extra fields.
//
//	ctx = logging.WithFields(ctx, func(c zerolog.Context) zerolog.Context {
//		return c.Float64("evaporating_temp", req.EvaporatingTemp)
//	})
func WithFields(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	base := LoggerFromContext(ctx)
	return ContextWithLogger(ctx, add(base.With()).Logger())
}

// LoggerFromContext returns the pinned logger or the process logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if s := scopeFrom(ctx); s.logger != nil {
		return *s.logger
	}
	return Logger()
}

// Ctx returns the request logger with request_id attached when known.
func Ctx(ctx context.Context) *zerolog.Logger {
	s := scopeFrom(ctx)
	logger := LoggerFromContext(ctx)
	if s.requestID != "" {
		logger = logger.With().Str("request_id", s.requestID).Logger()
	}
	return &logger
}
