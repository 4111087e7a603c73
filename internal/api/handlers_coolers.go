// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/coolerselect/internal/events"
	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/selection"
)

// ListCoolers lists active coolers.
//
// @Summary List coolers
// @Tags Catalog
// @Produce json
// @Param model query string false "Model substring"
// @Param series query string false "Exact series"
// @Param min_heat_exchange_area query number false "Minimum heat exchange area (m²)"
// @Param max_heat_exchange_area query number false "Maximum heat exchange area (m²)"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} APIResponse{data=models.Page[models.Cooler]}
// @Failure 400 {object} APIResponse
// @Router /coolers [get]
func (h *Handler) ListCoolers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter := models.CoolerFilter{
		Model:  strings.TrimSpace(r.URL.Query().Get("model")),
		Series: strings.TrimSpace(r.URL.Query().Get("series")),
	}
	if !floatParams(rw, r, map[string]**float64{
		"min_heat_exchange_area": &filter.MinHeatExchangeArea,
		"max_heat_exchange_area": &filter.MaxHeatExchangeArea,
	}) {
		return
	}

	page, err := h.store.ListCoolers(r.Context(), filter, h.pagination(r))
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	rw.Success(page)
}

// GetCooler returns one active cooler.
//
// @Summary Get a cooler
// @Tags Catalog
// @Produce json
// @Param id path int true "Cooler id"
// @Success 200 {object} APIResponse{data=models.Cooler}
// @Failure 404 {object} APIResponse
// @Router /coolers/{id} [get]
func (h *Handler) GetCooler(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	cooler, err := h.store.GetCooler(r.Context(), id)
	if err != nil {
		rw.StoreError(err, "Cooler")
		return
	}
	rw.Success(cooler)
}

// CreateCooler adds a cooler to the catalog.
//
// @Summary Create a cooler
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body CoolerRequest true "Cooler"
// @Success 201 {object} APIResponse{data=models.Cooler}
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse "Model already exists"
// @Router /coolers [post]
func (h *Handler) CreateCooler(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req CoolerRequest
	if !decodeJSON(rw, w, r, &req) || !validateRequest(rw, &req) {
		return
	}

	cooler, err := h.store.CreateCooler(r.Context(), req.toModel())
	if err != nil {
		rw.StoreError(err, "Cooler model")
		return
	}
	h.notify(r.Context(), events.EntityCooler, events.ActionCreated, cooler.ID)
	rw.Created(cooler)
}

// UpdateCooler applies a partial update.
//
// @Summary Update a cooler
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Cooler id"
// @Param request body models.CoolerUpdate true "Fields to change"
// @Success 200 {object} APIResponse{data=models.Cooler}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /coolers/{id} [put]
func (h *Handler) UpdateCooler(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	var update models.CoolerUpdate
	if !decodeJSON(rw, w, r, &update) || !validateRequest(rw, &update) {
		return
	}
	if update.IsEmpty() {
		rw.BadRequest("No fields to update")
		return
	}

	cooler, err := h.store.UpdateCooler(r.Context(), id, &update)
	if err != nil {
		rw.StoreError(err, "Cooler")
		return
	}
	h.notify(r.Context(), events.EntityCooler, events.ActionUpdated, id)
	rw.Success(cooler)
}

// DeleteCooler soft-deletes a cooler and its capacity records.
//
// @Summary Delete a cooler
// @Tags Catalog
// @Param id path int true "Cooler id"
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /coolers/{id} [delete]
func (h *Handler) DeleteCooler(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	if err := h.store.DeleteCooler(r.Context(), id); err != nil {
		rw.StoreError(err, "Cooler")
		return
	}
	h.notify(r.Context(), events.EntityCooler, events.ActionDeleted, id)
	rw.NoContent()
}

// ListCapacities lists the active capacity records of a cooler.
//
// @Summary List capacity records of a cooler
// @Tags Catalog
// @Produce json
// @Param id path int true "Cooler id"
// @Success 200 {object} APIResponse{data=[]models.CapacityRecord}
// @Failure 404 {object} APIResponse
// @Router /coolers/{id}/capacities [get]
func (h *Handler) ListCapacities(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	if _, err := h.store.GetCooler(r.Context(), id); err != nil {
		rw.StoreError(err, "Cooler")
		return
	}
	records, err := h.store.ListCapacities(r.Context(), id)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if records == nil {
		records = []models.CapacityRecord{}
	}
	rw.Success(records)
}

// CreateCapacity adds a rated capacity to a cooler.
//
// @Summary Add a capacity record
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Cooler id"
// @Param request body CapacityRequest true "Capacity record"
// @Success 201 {object} APIResponse{data=models.CapacityRecord}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse "Status and refrigerant already rated"
// @Router /coolers/{id}/capacities [post]
func (h *Handler) CreateCapacity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	var req CapacityRequest
	if !decodeJSON(rw, w, r, &req) {
		return
	}
	req.normalize()
	if !validateRequest(rw, &req) {
		return
	}
	refrigerant, err := selection.ParseRefrigerant(req.Refrigerant)
	if err != nil {
		rw.ValidationError(err.Error(), nil)
		return
	}

	record, err := h.store.CreateCapacity(r.Context(), &models.CapacityRecord{
		CoolerID:      id,
		WorkingStatus: req.WorkingStatus,
		Refrigerant:   string(refrigerant),
		Capacity:      *req.Capacity,
	})
	if err != nil {
		rw.StoreError(err, "Capacity record")
		return
	}
	h.notify(r.Context(), events.EntityCapacity, events.ActionCreated, record.ID)
	rw.Created(record)
}

// DeleteCapacity soft-deletes a capacity record.
//
// @Summary Delete a capacity record
// @Tags Catalog
// @Param id path int true "Capacity record id"
// @Success 204
// @Failure 404 {object} APIResponse
// @Router /capacities/{id} [delete]
func (h *Handler) DeleteCapacity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id, ok := pathID(rw, r)
	if !ok {
		return
	}

	if err := h.store.DeleteCapacity(r.Context(), id); err != nil {
		rw.StoreError(err, "Capacity record")
		return
	}
	h.notify(r.Context(), events.EntityCapacity, events.ActionDeleted, id)
	rw.NoContent()
}
