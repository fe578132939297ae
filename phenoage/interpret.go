/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "math"

// Interpretation is a human-readable band for the gap between phenotypic and
// chronological age.
type Interpretation string

// Interpretation values, from most favourable to least.
const (
	InterpretationMuchYounger   Interpretation = "Significantly younger than chronological age - excellent health indicators"
	InterpretationYounger       Interpretation = "Younger than chronological age - good health indicators"
	InterpretationTypical       Interpretation = "Close to chronological age - normal aging"
	InterpretationSlightlyOlder Interpretation = "Slightly older than chronological age - consider lifestyle improvements"
	InterpretationOlder         Interpretation = "Older than chronological age - health improvements recommended"
	InterpretationMuchOlder     Interpretation = "Significantly older than chronological age - consult healthcare provider"
)

type interpretationBand struct {
	upTo  float64 // inclusive
	label Interpretation
}

// interpretationBands is scanned in order; the first band whose bound is at
// least the age difference wins.
var interpretationBands = []interpretationBand{
	{upTo: -10, label: InterpretationMuchYounger},
	{upTo: -5, label: InterpretationYounger},
	{upTo: 2, label: InterpretationTypical},
	{upTo: 5, label: InterpretationSlightlyOlder},
	{upTo: 10, label: InterpretationOlder},
	{upTo: math.Inf(1), label: InterpretationMuchOlder},
}

// Interpret classifies an age difference (phenotypic minus chronological, in
// years).
func Interpret(ageDifference float64) Interpretation {
	for _, band := range interpretationBands {
		if ageDifference <= band.upTo {
			return band.label
		}
	}

	return InterpretationMuchOlder
}

func (i Interpretation) String() string {
	return string(i)
}
