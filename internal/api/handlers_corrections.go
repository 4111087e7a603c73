// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"net/http"

	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/models"
)

// ListCorrections lists active correction coefficients.
//
// @Summary List correction coefficients
// @Tags Corrections
// @Produce json
// @Param min_evaporating_temp query number false "Inclusive lower bound"
// @Param max_evaporating_temp query number false "Inclusive upper bound"
// @Param min_delta_t query number false "Inclusive lower bound"
// @Param max_delta_t query number false "Inclusive upper bound"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} APIResponse{data=models.Page[models.CorrectionEntry]}
// @Failure 400 {object} APIResponse
// @Router /corrections [get]
func (h *Handler) ListCorrections(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var filter models.CorrectionFilter
	if !floatParams(rw, r, map[string]**float64{
		"min_evaporating_temp": &filter.MinEvaporatingTemp,
		"max_evaporating_temp": &filter.MaxEvaporatingTemp,
		"min_delta_t":          &filter.MinDeltaT,
		"max_delta_t":          &filter.MaxDeltaT,
	}) {
		return
	}

	page, err := h.store.ListCorrections(r.Context(), filter, h.pagination(r))
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(page)
}

// GetCorrection returns one correction coefficient.
//
// @Summary Get a correction coefficient
// @Tags Corrections
// @Produce json
// @Param id path int true "Correction id"
// @Success 200 {object} APIResponse{data=models.CorrectionEntry}
// @Failure 404 {object} APIResponse
// @Router /corrections/{id} [get]
func (h *Handler) GetCorrection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	entry, err := h.store.GetCorrection(r.Context(), id)
	if err != nil {
		rw.StoreError(err, "Correction entry")
		return
	}
	rw.Success(entry)
}

// CreateCorrection adds a measured coefficient.
//
// @Summary Create a correction coefficient
// @Tags Corrections
// @Accept json
// @Produce json
// @Param request body CorrectionRequest true "Coefficient"
// @Success 201 {object} APIResponse{data=models.CorrectionEntry}
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse "Pair already measured"
// @Router /corrections [post]
func (h *Handler) CreateCorrection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CorrectionRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	entry, err := h.store.CreateCorrection(r.Context(), &models.CorrectionEntry{
		EvaporatingTemp: *req.EvaporatingTemp,
		DeltaT:          *req.DeltaT,
		Quant:           *req.Quant,
	})
	if err != nil {
		rw.StoreError(err, "Correction entry")
		return
	}
	h.notify(r.Context(), events.EntityCorrection, events.ActionCreated, entry.ID)
	rw.Created(entry)
}

// UpdateCorrection changes a coefficient.
//
// @Summary Update a correction coefficient
// @Tags Corrections
// @Accept json
// @Produce json
// @Param id path int true "Correction id"
// @Param request body CorrectionUpdateRequest true "New coefficient"
// @Success 200 {object} APIResponse{data=models.CorrectionEntry}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /corrections/{id} [put]
func (h *Handler) UpdateCorrection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	var req CorrectionUpdateRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	entry, err := h.store.UpdateCorrectionQuant(r.Context(), id, *req.Quant)
	if err != nil {
		rw.StoreError(err, "Correction entry")
		return
	}
	h.notify(r.Context(), events.EntityCorrection, events.ActionUpdated, id)
	rw.Success(entry)
}

// DeleteCorrection soft-deletes a coefficient.
//
// @Summary Delete a correction coefficient
// @Tags Corrections
// @Param id path int true "Correction id"
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /corrections/{id} [delete]
func (h *Handler) DeleteCorrection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	if err := h.store.DeleteCorrection(r.Context(), id); err != nil {
		rw.StoreError(err, "Correction entry")
		return
	}
	h.notify(r.Context(), events.EntityCorrection, events.ActionDeleted, id)
	rw.NoContent()
}
