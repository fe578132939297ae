/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package phenoage

import "math"

// Regression coefficients of the phenotypic age model. These are fixed
// published values and must not be tuned.
const (
	coefIntercept           = -19.907
	coefAlbumin             = -0.0336
	coefCreatinine          = 0.0095
	coefGlucose             = 0.1953
	coefLogCRP              = 0.0954
	coefLymphocytePercent   = -0.0120
	coefMeanCellVolume      = 0.0268
	coefRedCellDistWidth    = 0.3306
	coefAlkalinePhosphatase = 0.00188
	coefWhiteBloodCellCount = 0.0554
	coefAge                 = 0.0804

	// Gompertz survival transform.
	gompertzGamma  = 0.0076927
	horizonMonths  = 120
	phenoIntercept = 141.50225
	phenoScale     = -0.00553
	phenoRate      = 0.090165
)

// Bounds applied to the mortality score before taking logarithms of it.
const (
	MinMortalityScore = 0.000001
	MaxMortalityScore = 0.999999
)

// Compute validates a candidate biomarker set and estimates its phenotypic
// age.
func Compute(in Input) (Result, error) {
	b, err := Validate(in)
	if err != nil {
		return Result{}, err
	}

	return Estimate(b)
}

// Estimate computes the phenotypic age for a biomarker set. It does not rely
// on prior validation: inputs the formula cannot handle are reported as a
// *ComputationError.
func Estimate(b Biomarkers) (Result, error) {
	xb, err := linearPredictor(b)
	if err != nil {
		return Result{}, err
	}

	score, clamped := clampMortality(mortalityScore(xb))

	phenoAge := phenoIntercept + math.Log(phenoScale*math.Log(1-score))/phenoRate
	if math.IsNaN(phenoAge) || math.IsInf(phenoAge, 0) {
		return Result{}, &ComputationError{Stage: "phenotypic age", Value: phenoAge}
	}

	roundedAge := roundTo(phenoAge, 1)
	difference := roundTo(phenoAge-b.Age, 1)

	return Result{
		PhenoAge:       roundedAge,
		MortalityScore: roundTo(score, 3),
		AgeDifference:  difference,
		Interpretation: Interpret(difference),
		WasClamped:     clamped,
	}, nil
}

// linearPredictor returns the weighted biomarker sum xb.
func linearPredictor(b Biomarkers) (float64, error) {
	if !(b.CRP > 0) || math.IsInf(b.CRP, 0) {
		return 0, &ComputationError{Stage: "ln(crp)", Value: b.CRP}
	}

	xb := coefIntercept +
		coefAlbumin*b.Albumin +
		coefCreatinine*b.Creatinine +
		coefGlucose*b.Glucose +
		coefLogCRP*math.Log(b.CRP) +
		coefLymphocytePercent*b.LymphocytePercent +
		coefMeanCellVolume*b.MeanCellVolume +
		coefRedCellDistWidth*b.RedCellDistWidth +
		coefAlkalinePhosphatase*b.AlkalinePhosphatase +
		coefWhiteBloodCellCount*b.WhiteBloodCellCount +
		coefAge*b.Age

	return xb, nil
}

// mortalityScore applies the Gompertz transform to the linear predictor.
func mortalityScore(xb float64) float64 {
	return 1 - math.Exp(-math.Exp(xb)*(math.Exp(horizonMonths*gompertzGamma)-1)/gompertzGamma)
}

// clampMortality pulls a raw score into [MinMortalityScore, MaxMortalityScore]
// and reports whether it had to move. NaN passes through unchanged.
func clampMortality(raw float64) (float64, bool) {
	switch {
	case raw < MinMortalityScore:
		return MinMortalityScore, true
	case raw > MaxMortalityScore:
		return MaxMortalityScore, true
	default:
		return raw, false
	}
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
