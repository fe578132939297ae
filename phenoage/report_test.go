// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package phenoage

import "testing"

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Result
		want string
	}{
		{
			name: "younger",
			in:   Result{PhenoAge: 42.3, AgeDifference: -2.7},
			want: "Your PhenoAge is 42.3 years (-2.7 years younger than your chronological age)",
		},
		{
			name: "older",
			in:   Result{PhenoAge: 81.9, AgeDifference: 41.9},
			want: "Your PhenoAge is 81.9 years (+41.9 years older than your chronological age)",
		},
		{
			name: "equal",
			in:   Result{PhenoAge: 30, AgeDifference: 0},
			want: "Your PhenoAge is 30.0 years (+0.0 years older than your chronological age)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Summary(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	result, err := Compute(referencePanel().Input())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := NewReport(45, result)

	if report.ChronologicalAge != 45 || report.PhenoAge != result.PhenoAge {
		t.Fatalf("unexpected report ages: %+v", report)
	}

	if report.Interpretation != result.Interpretation.String() {
		t.Fatalf("expected interpretation %q, got %q", result.Interpretation, report.Interpretation)
	}

	if !report.WasClamped || report.Warning != ClampWarning {
		t.Fatalf("expected clamp warning on saturated report, got %+v", report)
	}

	plain := NewReport(40, Result{PhenoAge: 81.9, AgeDifference: 41.9})
	if plain.Warning != "" || plain.WasClamped {
		t.Fatalf("did not expect a warning, got %+v", plain)
	}
}
