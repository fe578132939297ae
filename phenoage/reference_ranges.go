/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "fmt"

// ReferenceRange represents reference and optimal ranges for one biomarker
type ReferenceRange struct {
	Biomarker    string
	Unit         string
	ReferenceMin float64
	ReferenceMax float64
	OptimalMin   *float64
	OptimalMax   *float64
}

// Optimal renders the optimal band as text, e.g. "4.5-5.0" or "<1.0". A
// range without an optimal band renders its reference range.
func (r ReferenceRange) Optimal() string {
	optMin, optMax, hasOptimal := r.GetDisplayRange()

	switch {
	case hasOptimal && r.OptimalMin == nil:
		return "<" + formatRangeValue(optMax)
	case hasOptimal && r.OptimalMax == nil:
		return ">" + formatRangeValue(optMin)
	default:
		return fmt.Sprintf("%s-%s", formatRangeValue(optMin), formatRangeValue(optMax))
	}
}

// Reference renders the reference range as text, e.g. "3.5-5.2".
func (r ReferenceRange) Reference() string {
	return fmt.Sprintf("%s-%s", formatRangeValue(r.ReferenceMin), formatRangeValue(r.ReferenceMax))
}

// GetDisplayRange fills a missing optimal boundary from the reference range:
// - If both optimal min/max missing: use reference only
// - If only optimal max set: optimal min = reference min
// - If only optimal min set: optimal max = reference max
func (r ReferenceRange) GetDisplayRange() (optMin, optMax float64, hasOptimal bool) {
	if r.OptimalMin == nil && r.OptimalMax == nil {
		return r.ReferenceMin, r.ReferenceMax, false
	}

	optMin = r.ReferenceMin
	if r.OptimalMin != nil {
		optMin = *r.OptimalMin
	}

	optMax = r.ReferenceMax
	if r.OptimalMax != nil {
		optMax = *r.OptimalMax
	}

	return optMin, optMax, true
}

// GetReferenceNotes returns the notes that accompany every reference range
// listing.
func GetReferenceNotes() []string {
	return []string{
		"Values must be reported in the units listed for each biomarker; no unit conversion is performed",
		"Glucose must be a fasting measurement",
		"Lower CRP is generally better; it reflects systemic inflammation",
	}
}

// GetReferenceRanges returns the adult reference ranges for the nine
// biomarkers used by the model, in validation order.
// This is the authoritative source of truth for reference ranges.
func GetReferenceRanges() []ReferenceRange {
	return []ReferenceRange{
		// Unisex. Higher is better for longevity
		{
			Biomarker: "albumin", Unit: "g/dL",
			ReferenceMin: 3.5, ReferenceMax: 5.2,
			OptimalMin: ptr(4.5), OptimalMax: ptr(5.0),
		},
		{
			Biomarker: "creatinine", Unit: "mg/dL",
			ReferenceMin: 0.6, ReferenceMax: 1.3,
			OptimalMin: ptr(0.7), OptimalMax: ptr(1.1),
		},
		// Fasting only
		{
			Biomarker: "glucose", Unit: "mg/dL",
			ReferenceMin: 70, ReferenceMax: 99,
			OptimalMin: ptr(75.0), OptimalMax: ptr(90.0),
		},
		{
			Biomarker: "crp", Unit: "mg/L",
			ReferenceMin: 0, ReferenceMax: 3.0,
			OptimalMin: nil, OptimalMax: ptr(1.0),
		},
		{
			Biomarker: "lymphocytePercent", Unit: "%",
			ReferenceMin: 20, ReferenceMax: 40,
			OptimalMin: ptr(25.0), OptimalMax: ptr(35.0),
		},
		{
			Biomarker: "meanCellVolume", Unit: "fL",
			ReferenceMin: 80, ReferenceMax: 96,
			OptimalMin: ptr(82.0), OptimalMax: ptr(92.0),
		},
		{
			Biomarker: "redCellDistWidth", Unit: "%",
			ReferenceMin: 11.5, ReferenceMax: 14.5,
			OptimalMin: nil, OptimalMax: ptr(13.0),
		},
		{
			Biomarker: "alkalinePhosphatase", Unit: "U/L",
			ReferenceMin: 40, ReferenceMax: 130,
			OptimalMin: ptr(60.0), OptimalMax: ptr(100.0),
		},
		{
			Biomarker: "whiteBloodCellCount", Unit: "1000 cells/µL",
			ReferenceMin: 4.5, ReferenceMax: 11.0,
			OptimalMin: ptr(5.0), OptimalMax: ptr(8.0),
		},
	}
}

// RangeEntry is the serialized form of a ReferenceRange.
type RangeEntry struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Optimal string  `json:"optimal" yaml:"optimal"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// ReferenceTable returns the reference ranges keyed by biomarker name.
func ReferenceTable() map[string]RangeEntry {
	ranges := GetReferenceRanges()

	table := make(map[string]RangeEntry, len(ranges))
	for _, r := range ranges {
		table[r.Biomarker] = RangeEntry{
			Min:     r.ReferenceMin,
			Max:     r.ReferenceMax,
			Optimal: r.Optimal(),
			Unit:    r.Unit,
		}
	}

	return table
}

func formatRangeValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
