// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package metrics

import "time"

var (
	// endpoint is the chi route pattern, never the raw path.
	APIRequestsTotal = counterVec("api_requests_total", "HTTP requests served",
		"method", "endpoint", "status_code")
	APIRequestDuration = histogramVec("api_request_duration_seconds", "HTTP request latency",
		[]float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, "method", "endpoint")
	APIActiveRequests = gauge("api_active_requests", "HTTP requests in flight")
	APIRateLimitHits  = counterVec("api_rate_limit_hits_total", "Requests rejected by the rate limiter", "endpoint")
)

func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments the in-flight gauge when inc is true and
// decrements it otherwise.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}
