// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/coolerselect/internal/database"
	"github.com/tomtom215/coolerselect/internal/logging"
)

// APIResponse is the envelope of every JSON body. Exactly one of Data and
// Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError is the error half of the envelope. Code is one of the ErrCode
// constants.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// APIMeta is attached to every enveloped response.
type APIMeta struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMs int64     `json:"query_time_ms"`
	RequestID   string    `json:"request_id,omitempty"`
}

const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
	ErrCodeClientClosed       = "CLIENT_CLOSED_REQUEST"
)

// StatusClientClosedRequest is the non-standard 499 used when the client
// disconnected before the answer was ready.
const StatusClientClosedRequest = 499

// statusCodes gives the default error code for a status.
var statusCodes = map[int]string{
	http.StatusBadRequest:            ErrCodeBadRequest,
	http.StatusNotFound:              ErrCodeNotFound,
	http.StatusMethodNotAllowed:      ErrCodeMethodNotAllowed,
	http.StatusConflict:              ErrCodeConflict,
	http.StatusRequestEntityTooLarge: ErrCodePayloadTooLarge,
	http.StatusTooManyRequests:       ErrCodeTooManyRequests,
	http.StatusInternalServerError:   ErrCodeInternalError,
	http.StatusServiceUnavailable:    ErrCodeServiceUnavailable,
	http.StatusGatewayTimeout:        ErrCodeGatewayTimeout,
	StatusClientClosedRequest:        ErrCodeClientClosed,
}

// ResponseWriter writes enveloped responses for one request. QueryTimeMs
// counts from NewResponseWriter.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

func (rw *ResponseWriter) meta() *APIMeta {
	return &APIMeta{
		Timestamp:   time.Now().UTC(),
		QueryTimeMs: time.Since(rw.started).Milliseconds(),
		RequestID:   logging.RequestIDFromContext(rw.r.Context()),
	}
}

func (rw *ResponseWriter) Success(data interface{}) {
	rw.send(http.StatusOK, APIResponse{Success: true, Data: data})
}

func (rw *ResponseWriter) Created(data interface{}) {
	rw.send(http.StatusCreated, APIResponse{Success: true, Data: data})
}

func (rw *ResponseWriter) NoContent() {
	rw.w.WriteHeader(http.StatusNoContent)
}

// Error writes an error envelope. An empty code falls back to the default
// for status.
func (rw *ResponseWriter) Error(status int, code, message string) {
	rw.ErrorWithDetails(status, code, message, nil)
}

func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details interface{}) {
	if code == "" {
		code = statusCodes[status]
	}
	rw.send(status, APIResponse{Error: &APIError{Code: code, Message: message, Details: details}})
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, "", message)
}

func (rw *ResponseWriter) ValidationError(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, message, details)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, "", message)
}

func (rw *ResponseWriter) Conflict(message string) {
	rw.Error(http.StatusConflict, "", message)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, "", message)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, "", message)
}

// DatabaseError logs err and answers 500 without echoing it.
func (rw *ResponseWriter) DatabaseError(err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Catalog store error")
	rw.Error(http.StatusInternalServerError, ErrCodeDatabaseError, "A database error occurred")
}

// StoreError maps catalog store errors: ErrNotFound is 404, ErrConflict
// 409, anything else DatabaseError. what names the entity ("Cooler").
func (rw *ResponseWriter) StoreError(err error, what string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		rw.NotFound(what + " not found")
	case errors.Is(err, database.ErrConflict):
		rw.Conflict(what + " already exists")
	default:
		rw.DatabaseError(err)
	}
}

// send marshals before writing the header so that an encoding failure can
// still be reported as a 500.
func (rw *ResponseWriter) send(status int, body APIResponse) {
	body.Meta = rw.meta()
	payload, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Int("status", status).Msg("Failed to encode JSON response")
		status = http.StatusInternalServerError
		payload = []byte(`{"success":false,"error":{"code":"` + ErrCodeInternalError + `","message":"Failed to encode response"}}`)
	}
	payload = append(payload, '\n')

	h := rw.w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(payload)))
	rw.w.WriteHeader(status)
	if _, err := rw.w.Write(payload); err != nil {
		logging.Ctx(rw.r.Context()).Debug().Err(err).Msg("Client went away before response was written")
	}
}

// WriteError writes an error envelope outside a handler (router fallbacks,
// middleware).
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	NewResponseWriter(w, r).Error(status, code, message)
}
