/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "math"

// Validate checks a candidate biomarker set field by field in table order and
// returns the complete set. It stops at the first field that is missing, not
// finite, or outside its accepted range.
func Validate(in Input) (Biomarkers, error) {
	var out Biomarkers

	for _, f := range biomarkerFields {
		v := *f.candidate(&in)
		if err := f.check(v); err != nil {
			return Biomarkers{}, err
		}

		*f.value(&out) = *v
	}

	return out, nil
}

func (f Field) check(v *float64) error {
	if v == nil {
		return f.invalid(nil, errMissingValue)
	}

	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return f.invalid(v, errNotFinite)
	}

	if *v < f.Min || *v > f.Max {
		return f.invalid(v, errOutOfRange)
	}

	return nil
}

func (f Field) invalid(v *float64, reason error) *ValidationError {
	var value *float64
	if v != nil {
		value = ptr(*v)
	}

	return &ValidationError{
		Field:  f.Name,
		Unit:   f.Unit,
		Min:    f.Min,
		Max:    f.Max,
		Value:  value,
		reason: reason,
	}
}
