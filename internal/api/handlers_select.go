// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coolerselect/internal/catalog"
	"github.com/tomtom215/coolerselect/internal/logging"
	"github.com/tomtom215/coolerselect/internal/metrics"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// Values of the outcome label on selections_total.
const (
	outcomeOK             = "ok"
	outcomeClientError    = "client_error"
	outcomeInfrastructure = "infrastructure_error"
	outcomeCanceled       = "canceled"
)

// SelectCoolers handles cooler selection for an operating requirement.
//
// @Summary Select coolers
// @Description Ranks the catalog units whose rated capacity is nearest to the corrected target capacity for the given operating conditions
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Operating conditions"
// @Success 200 {object} APIResponse{data=selection.Result} "Ranked units"
// @Failure 400 {object} APIResponse "Invalid operating conditions"
// @Failure 503 {object} APIResponse "Catalog unavailable"
// @Failure 504 {object} APIResponse "Catalog timed out"
// @Router /coolers/select [post]
func (h *Handler) SelectCoolers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SelectRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	sreq := req.toSelection()
	ctx := logging.WithFields(r.Context(), func(c zerolog.Context) zerolog.Context {
		return c.Float64("evaporating_temp", sreq.EvaporatingTemp).
			Float64("repo_temp", sreq.RepoTemp).
			Float64("required_cooling_cap", sreq.RequiredCoolingCap)
	})

	start := time.Now()
	result, err := h.selector.Select(ctx, sreq)
	if err != nil {
		metrics.RecordSelection(writeSelectionError(ctx, rw, err), time.Since(start))
		return
	}
	metrics.RecordSelection(outcomeOK, time.Since(start))
	if result.Total > 0 {
		calc := result.Calculation
		metrics.RecordSelectionResult(string(calc.QuantSource), string(calc.Bucket), result.Total)
	}
	rw.Success(result)
}

// writeSelectionError maps engine errors and returns the outcome label.
// Client errors are 400, catalog failures 503 and catalog timeouts 504. A
// caller that went away gets 499 and is not counted as a catalog failure.
func writeSelectionError(ctx context.Context, rw *ResponseWriter, err error) string {
	if selection.IsClientError(err) {
		rw.ValidationError(err.Error(), nil)
		return outcomeClientError
	}

	logger := logging.Ctx(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Debug().Err(err).Msg("Client went away during selection")
		rw.Error(StatusClientClosedRequest, ErrCodeClientClosed, "Request canceled")
		return outcomeCanceled
	}

	var infraErr *selection.InfrastructureError
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		logger.Warn().Err(err).Msg("Selection rejected by open catalog breaker")
		rw.ServiceUnavailable("Catalog temporarily unavailable")
	case errors.As(err, &infraErr) && infraErr.Timeout():
		logger.Warn().Err(err).Str("op", infraErr.Op).Msg("Catalog call timed out")
		rw.Error(http.StatusGatewayTimeout, ErrCodeGatewayTimeout, "Catalog did not respond in time")
	case errors.As(err, &infraErr):
		logger.Error().Err(err).Str("op", infraErr.Op).Msg("Catalog call failed")
		rw.ServiceUnavailable("Catalog unavailable")
	default:
		logger.Error().Err(err).Msg("Selection failed")
		rw.InternalError("Selection failed")
	}
	return outcomeInfrastructure
}
