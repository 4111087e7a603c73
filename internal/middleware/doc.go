// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: reuses or generates X-Request-ID and puts it in the context
    so that logging.Ctx tags every log line of the request
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds and
    api_active_requests, labeled by chi route pattern
  - RequestLogger: one log line per request, warn level for 5xx and slow
    requests

All three are plain func(http.Handler) http.Handler values for chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.RequestLogger(time.Second))

RequestID must come first so the other two see the id.
*/
package middleware
