/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "fmt"

// Input is a candidate biomarker set as received from a caller. Fields are
// pointers so that an omitted value can be told apart from zero.
type Input struct {
	Age                 *float64 `json:"age" yaml:"age"`
	Albumin             *float64 `json:"albumin" yaml:"albumin"`
	Creatinine          *float64 `json:"creatinine" yaml:"creatinine"`
	Glucose             *float64 `json:"glucose" yaml:"glucose"`
	CRP                 *float64 `json:"crp" yaml:"crp"`
	LymphocytePercent   *float64 `json:"lymphocytePercent" yaml:"lymphocytePercent"`
	MeanCellVolume      *float64 `json:"meanCellVolume" yaml:"meanCellVolume"`
	RedCellDistWidth    *float64 `json:"redCellDistWidth" yaml:"redCellDistWidth"`
	AlkalinePhosphatase *float64 `json:"alkalinePhosphatase" yaml:"alkalinePhosphatase"`
	WhiteBloodCellCount *float64 `json:"whiteBloodCellCount" yaml:"whiteBloodCellCount"`
}

// Biomarkers is a complete biomarker set in the documented units.
type Biomarkers struct {
	Age                 float64 `json:"age"`                 // years
	Albumin             float64 `json:"albumin"`             // g/dL
	Creatinine          float64 `json:"creatinine"`          // mg/dL
	Glucose             float64 `json:"glucose"`             // mg/dL, fasting
	CRP                 float64 `json:"crp"`                 // mg/L
	LymphocytePercent   float64 `json:"lymphocytePercent"`   // %
	MeanCellVolume      float64 `json:"meanCellVolume"`      // fL
	RedCellDistWidth    float64 `json:"redCellDistWidth"`    // %
	AlkalinePhosphatase float64 `json:"alkalinePhosphatase"` // U/L
	WhiteBloodCellCount float64 `json:"whiteBloodCellCount"` // 1000 cells/µL
}

// Input returns the biomarkers as a fully populated candidate set.
func (b Biomarkers) Input() Input {
	return Input{
		Age:                 ptr(b.Age),
		Albumin:             ptr(b.Albumin),
		Creatinine:          ptr(b.Creatinine),
		Glucose:             ptr(b.Glucose),
		CRP:                 ptr(b.CRP),
		LymphocytePercent:   ptr(b.LymphocytePercent),
		MeanCellVolume:      ptr(b.MeanCellVolume),
		RedCellDistWidth:    ptr(b.RedCellDistWidth),
		AlkalinePhosphatase: ptr(b.AlkalinePhosphatase),
		WhiteBloodCellCount: ptr(b.WhiteBloodCellCount),
	}
}

// Result is the outcome of a single phenotypic age estimate.
type Result struct {
	PhenoAge float64 `json:"phenoAge"`
	// MortalityScore is the 10-year mortality probability rounded to three
	// decimals. The formula works on a score inside (0, 1), but a saturated
	// score displays as 0 or 1 after rounding; WasClamped marks those.
	MortalityScore float64        `json:"mortalityScore"`
	AgeDifference  float64        `json:"ageDifference"`
	Interpretation Interpretation `json:"interpretation"`
	// WasClamped is set when the mortality score saturated and had to be
	// pulled back into its safe interval.
	WasClamped bool `json:"wasClamped,omitempty"`
}

// Field describes one biomarker: its wire name, unit and accepted range.
type Field struct {
	Name string
	Unit string
	Min  float64
	Max  float64

	candidate func(*Input) **float64
	value     func(*Biomarkers) *float64
}

// biomarkerFields lists the biomarkers in validation order.
var biomarkerFields = []Field{
	{
		Name: "age", Unit: "years", Min: 0, Max: 120,
		candidate: func(in *Input) **float64 { return &in.Age },
		value:     func(b *Biomarkers) *float64 { return &b.Age },
	},
	{
		Name: "albumin", Unit: "g/dL", Min: 1, Max: 6,
		candidate: func(in *Input) **float64 { return &in.Albumin },
		value:     func(b *Biomarkers) *float64 { return &b.Albumin },
	},
	{
		Name: "creatinine", Unit: "mg/dL", Min: 0.1, Max: 15,
		candidate: func(in *Input) **float64 { return &in.Creatinine },
		value:     func(b *Biomarkers) *float64 { return &b.Creatinine },
	},
	{
		Name: "glucose", Unit: "mg/dL", Min: 30, Max: 500,
		candidate: func(in *Input) **float64 { return &in.Glucose },
		value:     func(b *Biomarkers) *float64 { return &b.Glucose },
	},
	{
		Name: "crp", Unit: "mg/L", Min: 0.01, Max: 100,
		candidate: func(in *Input) **float64 { return &in.CRP },
		value:     func(b *Biomarkers) *float64 { return &b.CRP },
	},
	{
		Name: "lymphocytePercent", Unit: "%", Min: 0, Max: 100,
		candidate: func(in *Input) **float64 { return &in.LymphocytePercent },
		value:     func(b *Biomarkers) *float64 { return &b.LymphocytePercent },
	},
	{
		Name: "meanCellVolume", Unit: "fL", Min: 50, Max: 150,
		candidate: func(in *Input) **float64 { return &in.MeanCellVolume },
		value:     func(b *Biomarkers) *float64 { return &b.MeanCellVolume },
	},
	{
		Name: "redCellDistWidth", Unit: "%", Min: 5, Max: 30,
		candidate: func(in *Input) **float64 { return &in.RedCellDistWidth },
		value:     func(b *Biomarkers) *float64 { return &b.RedCellDistWidth },
	},
	{
		Name: "alkalinePhosphatase", Unit: "U/L", Min: 10, Max: 500,
		candidate: func(in *Input) **float64 { return &in.AlkalinePhosphatase },
		value:     func(b *Biomarkers) *float64 { return &b.AlkalinePhosphatase },
	},
	{
		Name: "whiteBloodCellCount", Unit: "1000 cells/µL", Min: 1, Max: 50,
		candidate: func(in *Input) **float64 { return &in.WhiteBloodCellCount },
		value:     func(b *Biomarkers) *float64 { return &b.WhiteBloodCellCount },
	},
}

// Fields returns the biomarker definitions in validation order.
func Fields() []Field {
	out := make([]Field, len(biomarkerFields))
	copy(out, biomarkerFields)

	return out
}

// LookupField returns the biomarker field with the given wire name.
func LookupField(name string) (Field, bool) {
	for _, f := range biomarkerFields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Set assigns a candidate value by wire name.
func (in *Input) Set(name string, v float64) error {
	f, ok := LookupField(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	*f.candidate(in) = ptr(v)

	return nil
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}
