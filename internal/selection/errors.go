// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package selection

import (
	"context"
	"errors"
	"fmt"
)

// RangeError reports an evaporating temperature outside the classifiable domain.
type RangeError struct {
	Value float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("evaporating temperature %g is above the supported maximum %g", e.Value, e.Max)
}

// UnknownValueError reports an enumerated request field with an unrecognized value.
type UnknownValueError struct {
	Field string
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// DomainRangeError reports a non-positive divisor in the target calculation.
type DomainRangeError struct {
	Name  string
	Value float64
}

func (e *DomainRangeError) Error() string {
	return fmt.Sprintf("%s must be positive, got %g", e.Name, e.Value)
}

// InfrastructureError reports a failed catalog call. Op names the call.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the catalog call ran out of time.
func (e *InfrastructureError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// IsClientError reports whether err was caused by the request rather than
// by the service: range, unknown value and domain errors.
func IsClientError(err error) bool {
	var rangeErr *RangeError
	var unknownErr *UnknownValueError
	var domainErr *DomainRangeError
	return errors.As(err, &rangeErr) || errors.As(err, &unknownErr) || errors.As(err, &domainErr)
}
