// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/coolerselect/internal/models"
	"github.com/tomtom215/coolerselect/internal/validation"
)

// maxJSONBodyBytes bounds JSON request bodies.
const maxJSONBodyBytes = 1 << 20

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeJSON decodes a bounded JSON body into v. On failure it writes the
// 400 response and returns false.
func decodeJSON(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, v interface{}) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "Request body too large")
			return false
		}
		rw.BadRequest("Failed to read request body")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		rw.BadRequest("Invalid JSON body: " + sanitizeLogValue(err.Error()))
		return false
	}
	return true
}

// validateRequest validates v with go-playground/validator. On failure it
// writes the 400 response and returns false.
func validateRequest(rw *ResponseWriter, v interface{}) bool {
	errs := validation.Struct(v)
	if errs == nil {
		return true
	}
	rw.ErrorWithDetails(http.StatusBadRequest, validation.Code, errs.Error(), errs.Details())
	return false
}

// pathID parses the {id} URL parameter. On failure it writes the 400
// response and returns false.
func pathID(rw *ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		rw.BadRequest(fmt.Sprintf("Invalid id %q", sanitizeLogValue(raw)))
		return 0, false
	}
	return id, true
}

// pagination reads page and size, clamping size to the configured maximum.
// Malformed values fall back to the defaults.
func (h *Handler) pagination(r *http.Request) models.Pagination {
	def, limit := defaultPageSize, maxPageSize
	if h.config != nil {
		if h.config.API.DefaultPageSize > 0 {
			def = h.config.API.DefaultPageSize
		}
		if h.config.API.MaxPageSize > 0 {
			limit = h.config.API.MaxPageSize
		}
	}

	page := getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	size := getIntParam(r, "size", def)
	if size < 1 {
		size = def
	}
	return models.Pagination{Page: page, Size: min(size, limit)}
}

// getIntParam extracts an integer query parameter with a default value
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// floatParams reads optional float query parameters into the given
// pointers. An unparsable value writes a 400 and returns false.
func floatParams(rw *ResponseWriter, r *http.Request, params map[string]**float64) bool {
	q := r.URL.Query()
	for key, dst := range params {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			rw.BadRequest(fmt.Sprintf("Query parameter %s must be a number", key))
			return false
		}
		*dst = &v
	}
	return true
}
