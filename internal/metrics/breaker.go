// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package metrics

var (
	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = gaugeVec("circuit_breaker_state", "Circuit breaker state", "name")

	// result is success, failure or rejected.
	CircuitBreakerRequests = counterVec("circuit_breaker_requests_total",
		"Calls made through a circuit breaker", "name", "result")

	CircuitBreakerConsecutiveFailures = gaugeVec("circuit_breaker_consecutive_failures",
		"Failures since the last success", "name")

	CircuitBreakerTransitions = counterVec("circuit_breaker_state_transitions_total",
		"Circuit breaker state changes", "name", "from", "to")
)
