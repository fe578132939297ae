/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LabResult is a single named lab value, as it appears on a lab report.
type LabResult struct {
	Name  string   `yaml:"name"`
	Value *float64 `yaml:"value"`
	Unit  string   `yaml:"unit,omitempty"`
}

// LabPanel is a lab report file. Biomarkers may be given directly by field
// name, as a list of named lab results, or both; direct fields win.
type LabPanel struct {
	Input   `yaml:",inline"`
	Results []LabResult `yaml:"results,omitempty"`
}

type labAlias struct {
	field string
	names []string
	units []string
}

// labAliases maps lab report test names and unit spellings to biomarker
// fields. Units are compared after normalizeLabel.
var labAliases = []labAlias{
	{
		field: "albumin",
		names: []string{"Albumin", "Serum Albumin"},
		units: []string{"g/dL"},
	},
	{
		field: "creatinine",
		names: []string{"Creatinine", "Serum Creatinine"},
		units: []string{"mg/dL"},
	},
	{
		field: "glucose",
		names: []string{"Glucose fasting FBS", "Fasting Glucose", "Glucose"},
		units: []string{"mg/dL"},
	},
	{
		field: "crp",
		names: []string{"CRP", "hs-CRP", "C-Reactive Protein"},
		units: []string{"mg/L"},
	},
	{
		field: "lymphocytePercent",
		names: []string{"Lymphocytes", "Lymphocyte %", "Lymphocytes (%)"},
		units: []string{"%"},
	},
	{
		field: "meanCellVolume",
		names: []string{"M.C.V", "MCV", "Mean Cell Volume", "Mean Corpuscular Volume"},
		units: []string{"fL"},
	},
	{
		field: "redCellDistWidth",
		names: []string{"RDW - CV", "RDW-CV", "RDW"},
		units: []string{"%"},
	},
	{
		field: "alkalinePhosphatase",
		names: []string{"Alkaline Phosphatase (ALP)", "Alkaline Phosphatase", "ALP"},
		units: []string{"U/L", "IU/L"},
	},
	{
		field: "whiteBloodCellCount",
		names: []string{"White blood cells", "WBC", "White Blood Cell Count"},
		units: []string{"1000 cells/µL", "×10³/μL", "10^3/uL", "K/uL", "10^9/L"},
	},
}

// ParseLabPanel decodes a YAML lab panel.
func ParseLabPanel(r io.Reader) (LabPanel, error) {
	var panel LabPanel

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&panel); err != nil {
		if errors.Is(err, io.EOF) {
			return LabPanel{}, nil
		}

		return LabPanel{}, fmt.Errorf("failed to decode lab panel: %w", err)
	}

	return panel, nil
}

// CandidateInput merges named lab results into the directly specified
// fields. Results for tests unrelated to the model are ignored; a result in
// an unexpected unit is rejected since no conversion is performed.
func (p LabPanel) CandidateInput() (Input, error) {
	in := p.Input

	for _, result := range p.Results {
		alias, ok := findLabAlias(result.Name)
		if !ok {
			continue
		}

		field, _ := LookupField(alias.field)
		if result.Value == nil {
			return Input{}, field.invalid(nil, errMissingValue)
		}

		if result.Unit != "" && !alias.acceptsUnit(result.Unit) {
			return Input{}, field.invalid(result.Value, errUnexpectedUnit)
		}

		slot := field.candidate(&in)
		if *slot == nil {
			*slot = ptr(*result.Value)
		}
	}

	return in, nil
}

func findLabAlias(name string) (labAlias, bool) {
	want := normalizeLabel(name)
	for _, alias := range labAliases {
		for _, candidate := range alias.names {
			if normalizeLabel(candidate) == want {
				return alias, true
			}
		}
	}

	return labAlias{}, false
}

func (a labAlias) acceptsUnit(unit string) bool {
	want := normalizeLabel(unit)
	for _, candidate := range a.units {
		if normalizeLabel(candidate) == want {
			return true
		}
	}

	return false
}

// normalizeLabel lowercases and strips whitespace, and folds the micro
// sign, Greek mu and superscript three so that unit spellings compare equal.
func normalizeLabel(s string) string {
	replacer := strings.NewReplacer(
		"µ", "u",
		"μ", "u",
		"³", "^3",
		"×", "",
	)

	s = replacer.Replace(strings.ToLower(s))

	return strings.Join(strings.Fields(s), "")
}
