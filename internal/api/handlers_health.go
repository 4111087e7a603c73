// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/coolerselect/internal/metrics"
)

// Version is reported by the health endpoint; set at build time with
// -ldflags "-X github.com/tomtom215/coolerselect/internal/api.Version=...".
var Version = "dev"

const (
	healthPingTimeout = 2 * time.Second
	breakerOpen       = "open"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	BreakerState      string  `json:"breaker_state,omitempty"`
	Uptime            float64 `json:"uptime_seconds"`
}

func (h *Handler) health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	status := HealthStatus{
		Status:            "healthy",
		Version:           Version,
		DatabaseConnected: h.store != nil && h.store.Ping(ctx) == nil,
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	metrics.AppUptime.Set(status.Uptime)
	if h.breaker != nil {
		status.BreakerState = h.breaker.State()
	}
	if !status.DatabaseConnected || status.BreakerState == breakerOpen {
		status.Status = "degraded"
	}
	return status
}

// Health reports database connectivity and breaker state.
//
// @Summary Get service health
// @Description Always 200; status is "degraded" when the database does not answer or the catalog breaker is open
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.health(r.Context()))
}

// HealthLive is the liveness probe: 200 while the process serves requests.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady is the readiness probe: 503 unless the service can select.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Failure 503 {object} APIResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	status := h.health(r.Context())
	if status.Status != "healthy" {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready", status)
		return
	}
	rw.Success(status)
}
