// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package phenoage

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func referencePanel() Biomarkers {
	return Biomarkers{
		Age:                 45,
		Albumin:             4.2,
		Creatinine:          0.9,
		Glucose:             85,
		CRP:                 0.5,
		LymphocytePercent:   30,
		MeanCellVolume:      89,
		RedCellDistWidth:    12.5,
		AlkalinePhosphatase: 65,
		WhiteBloodCellCount: 6.2,
	}
}

func withField(t *testing.T, b Biomarkers, name string, v float64) Input {
	t.Helper()

	field, ok := LookupField(name)
	if !ok {
		t.Fatalf("unknown field %q", name)
	}

	in := b.Input()
	*field.candidate(&in) = ptr(v)

	return in
}

func TestValidateBoundariesAreInclusive(t *testing.T) {
	t.Parallel()

	for _, field := range Fields() {
		t.Run(field.Name, func(t *testing.T) {
			t.Parallel()

			for _, v := range []float64{field.Min, field.Max} {
				if _, err := Validate(withField(t, referencePanel(), field.Name, v)); err != nil {
					t.Fatalf("expected %v to be accepted, got %v", v, err)
				}
			}

			for _, v := range []float64{field.Min - 0.01, field.Max + 0.01} {
				_, err := Validate(withField(t, referencePanel(), field.Name, v))

				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected validation error for %v, got %v", v, err)
				}

				if vErr.Field != field.Name {
					t.Fatalf("expected field %q, got %q", field.Name, vErr.Field)
				}

				if vErr.Value == nil || *vErr.Value != v {
					t.Fatalf("expected offending value %v, got %v", v, vErr.Value)
				}

				if !errors.Is(err, errOutOfRange) {
					t.Fatalf("expected out of range reason, got %v", err)
				}
			}
		})
	}
}

func TestValidateAlbuminExamples(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{1, 6} {
		if _, err := Validate(withField(t, referencePanel(), "albumin", v)); err != nil {
			t.Fatalf("albumin %v: unexpected error %v", v, err)
		}
	}

	for _, v := range []float64{0.99, 6.01} {
		_, err := Validate(withField(t, referencePanel(), "albumin", v))
		if err == nil {
			t.Fatalf("albumin %v: expected error", v)
		}

		msg := err.Error()
		if !strings.Contains(msg, "albumin") || !strings.Contains(msg, "between 1 and 6 g/dL") {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Validate(withField(t, referencePanel(), "glucose", v))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for %v, got %v", v, err)
		}

		if !errors.Is(err, errNotFinite) {
			t.Fatalf("expected not-finite reason for %v, got %v", v, err)
		}
	}
}

func TestValidateReportsMissingField(t *testing.T) {
	t.Parallel()

	in := referencePanel().Input()
	in.MeanCellVolume = nil

	_, err := Validate(in)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if vErr.Field != "meanCellVolume" || vErr.Value != nil {
		t.Fatalf("unexpected error details: %+v", vErr)
	}

	if !strings.Contains(err.Error(), "meanCellVolume is required") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	in := referencePanel().Input()
	in.WhiteBloodCellCount = nil
	in.Glucose = ptr(1000)
	in.Albumin = ptr(0.5)

	_, err := Validate(in)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if vErr.Field != "albumin" {
		t.Fatalf("expected first failing field albumin, got %q", vErr.Field)
	}
}

func TestValidateReturnsCompleteSet(t *testing.T) {
	t.Parallel()

	want := referencePanel()

	got, err := Validate(want.Input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFieldsOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"age", "albumin", "creatinine", "glucose", "crp", "lymphocytePercent",
		"meanCellVolume", "redCellDistWidth", "alkalinePhosphatase", "whiteBloodCellCount",
	}

	fields := Fields()
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}

	for i, name := range want {
		if fields[i].Name != name {
			t.Fatalf("field %d: expected %q, got %q", i, name, fields[i].Name)
		}

		if fields[i].Min > fields[i].Max {
			t.Fatalf("field %q has inverted bounds", name)
		}
	}

	if _, ok := LookupField("height"); ok {
		t.Fatalf("did not expect unknown field lookup to succeed")
	}
}

func TestInputSet(t *testing.T) {
	t.Parallel()

	var in Input
	if err := in.Set("redCellDistWidth", 12.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.RedCellDistWidth == nil || *in.RedCellDistWidth != 12.5 {
		t.Fatalf("expected value to be set, got %v", in.RedCellDistWidth)
	}

	if err := in.Set("height", 180); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}
