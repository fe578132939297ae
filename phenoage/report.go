/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "fmt"

// ClampWarning is attached to reports whose mortality score saturated.
const ClampWarning = "Mortality score was at the mathematical limit and was adjusted to allow calculation"

// Report is a Result prepared for presentation to a caller.
type Report struct {
	PhenoAge         float64 `json:"phenoAge" yaml:"phenoAge"`
	ChronologicalAge float64 `json:"chronologicalAge" yaml:"chronologicalAge"`
	AgeDifference    float64 `json:"ageDifference" yaml:"ageDifference"`
	MortalityScore   float64 `json:"mortalityScore" yaml:"mortalityScore"`
	Interpretation   string  `json:"interpretation" yaml:"interpretation"`
	Summary          string  `json:"summary" yaml:"summary"`
	WasClamped       bool    `json:"wasClamped,omitempty" yaml:"wasClamped,omitempty"`
	Warning          string  `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// NewReport builds the caller-facing report for a result computed from a
// person of the given chronological age.
func NewReport(chronologicalAge float64, r Result) Report {
	report := Report{
		PhenoAge:         r.PhenoAge,
		ChronologicalAge: chronologicalAge,
		AgeDifference:    r.AgeDifference,
		MortalityScore:   r.MortalityScore,
		Interpretation:   r.Interpretation.String(),
		Summary:          Summary(r),
		WasClamped:       r.WasClamped,
	}
	if r.WasClamped {
		report.Warning = ClampWarning
	}

	return report
}

// Summary renders a one-line description of a result.
func Summary(r Result) string {
	direction := "older"
	if r.AgeDifference < 0 {
		direction = "younger"
	}

	return fmt.Sprintf("Your PhenoAge is %.1f years (%+.1f years %s than your chronological age)",
		r.PhenoAge, r.AgeDifference, direction)
}
