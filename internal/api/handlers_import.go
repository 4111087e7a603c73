// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/coolerselect/internal/importer"
	"github.com/tomtom215/coolerselect/internal/logging"
)

// defaultMaxUploadBytes applies when the import section sets no limit.
const defaultMaxUploadBytes = 10 << 20

// ImportCoolers loads a cooler data sheet.
//
// @Summary Import a cooler data sheet
// @Description CSV with one column per unit: model, SC1..SC5 capacities, refrigerant, then the unit specification rows. Units are matched by model and overwritten.
// @Tags Import
// @Accept text/csv
// @Produce json
// @Success 200 {object} APIResponse{data=importer.ImportStats}
// @Failure 400 {object} APIResponse "Malformed sheet"
// @Failure 409 {object} APIResponse "Import already in progress"
// @Failure 413 {object} APIResponse "File too large"
// @Router /import/coolers [post]
func (h *Handler) ImportCoolers(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, importer.KindCoolers)
}

// ImportCorrections loads a correction coefficient grid.
//
// @Summary Import a correction grid
// @Description CSV whose header row holds evaporating temperatures and first column holds temperature differences. Existing pairs are updated.
// @Tags Import
// @Accept text/csv
// @Produce json
// @Success 200 {object} APIResponse{data=importer.ImportStats}
// @Failure 400 {object} APIResponse "Malformed grid"
// @Failure 409 {object} APIResponse "Import already in progress"
// @Failure 413 {object} APIResponse "File too large"
// @Router /import/corrections [post]
func (h *Handler) ImportCorrections(w http.ResponseWriter, r *http.Request) {
	h.runImport(w, r, importer.KindCorrections)
}

func (h *Handler) runImport(w http.ResponseWriter, r *http.Request, kind importer.Kind) {
	rw := NewResponseWriter(w, r)
	if h.importer == nil {
		rw.ServiceUnavailable("Imports are not enabled")
		return
	}

	run := h.importer.ImportCoolers
	if kind == importer.KindCorrections {
		run = h.importer.ImportCorrections
	}

	limit := int64(defaultMaxUploadBytes)
	if h.config != nil && h.config.Import.MaxUploadBytes > 0 {
		limit = h.config.Import.MaxUploadBytes
	}
	body := http.MaxBytesReader(w, r.Body, limit)

	stats, err := run(r.Context(), body)
	if err == nil {
		rw.Success(stats)
		return
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, importer.ErrImportInProgress):
		rw.Conflict("An import is already running")
	case errors.As(err, &tooLarge):
		rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Import file too large")
	case errors.Is(err, importer.ErrInvalidFile):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, sanitizeLogValue(err.Error()), stats)
	default:
		// Earlier batches stay committed; the stats say how far it got.
		logging.Ctx(r.Context()).Error().Err(err).Msg("Catalog import failed")
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeDatabaseError, "Import failed", stats)
	}
}
