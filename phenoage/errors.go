/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("invalid biomarker input")

	// ErrComputation matches every *ComputationError via errors.Is.
	ErrComputation = errors.New("phenoage computation failed")

	// ErrUnknownField is returned when a biomarker name is not recognised.
	ErrUnknownField = errors.New("unknown biomarker")

	errMissingValue   = errors.New("value is missing")
	errNotFinite      = errors.New("value is not a finite number")
	errOutOfRange     = errors.New("value is out of range")
	errUnexpectedUnit = errors.New("unexpected unit")
)

// ValidationError reports the first biomarker that failed validation.
type ValidationError struct {
	Field string
	Unit  string
	Min   float64
	Max   float64
	// Value is nil when the field was not supplied.
	Value  *float64
	reason error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Value == nil:
		return fmt.Sprintf("%s is required (accepted range %s-%s %s)",
			e.Field, formatBound(e.Min), formatBound(e.Max), e.Unit)
	case errors.Is(e.reason, errNotFinite):
		return fmt.Sprintf("%s must be a finite number, got %v", e.Field, *e.Value)
	case errors.Is(e.reason, errUnexpectedUnit):
		return fmt.Sprintf("%s must be reported in %s", e.Field, e.Unit)
	default:
		return fmt.Sprintf("%s must be between %s and %s %s, got %s",
			e.Field, formatBound(e.Min), formatBound(e.Max), e.Unit, formatBound(*e.Value))
	}
}

// Is makes errors.Is(err, ErrValidation) hold for any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the specific failure reason.
func (e *ValidationError) Unwrap() error {
	return e.reason
}

// ComputationError reports a biomarker combination the formula cannot turn
// into a finite phenotypic age.
type ComputationError struct {
	Stage string
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("biomarker combination is mathematically extreme: %s produced %v", e.Stage, e.Value)
}

// Is makes errors.Is(err, ErrComputation) hold for any computation failure.
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
