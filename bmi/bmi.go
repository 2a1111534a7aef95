package bmi

import (
	"fmt"
	"math"
)

// Compute returns weight / height².
//
// Returns ErrZeroHeight when height is exactly zero instead of letting
// ±Inf or NaN escape. Every other input, negative or NaN included, is
// passed straight through the formula.
// Complexity: O(1).
func Compute(weight, height float64) (float64, error) {
	if height == 0 {
		return 0, ErrZeroHeight
	}

	return weight / (height * height), nil
}

// IsDietRecommended reports whether the BMI for weight/height is strictly
// above DietThreshold. A BMI of exactly 25.0 is not a recommendation.
func IsDietRecommended(weight, height float64) (bool, error) {
	v, err := Compute(weight, height)
	if err != nil {
		return false, err
	}

	return v > DietThreshold, nil
}

// FindCoderWithWorstBMI returns the coder with the highest BMI.
//
// The bool result is false when coders is empty; the Coder is then the zero
// value and must be ignored. Ties keep the earliest coder, since a later one
// only replaces the current holder when its BMI is strictly greater.
// A coder with zero height aborts the scan with a wrapped ErrZeroHeight.
//
// Complexity: O(n) time, O(1) memory; BMI is evaluated once per coder.
func FindCoderWithWorstBMI(coders []Coder) (Coder, bool, error) {
	if len(coders) == 0 {
		return Coder{}, false, nil
	}

	worstIdx := -1
	worstBMI := 0.0
	for i, c := range coders {
		v, err := c.BMI()
		if err != nil {
			return Coder{}, false, fmt.Errorf("coder %d: %w", i, err)
		}
		// NaN never compares greater, so a NaN first element is displaced by any real value.
		if worstIdx < 0 || v > worstBMI || (math.IsNaN(worstBMI) && !math.IsNaN(v)) {
			worstIdx, worstBMI = i, v
		}
	}

	return coders[worstIdx], true, nil
}

// Scores returns the BMI of every coder, in input order.
// No rounding is applied; see RoundedScores for presentation values.
// Complexity: O(n).
func Scores(coders []Coder) ([]float64, error) {
	out := make([]float64, len(coders))
	for i, c := range coders {
		v, err := c.BMI()
		if err != nil {
			return nil, fmt.Errorf("coder %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// RoundedScores is Scores with every value rounded to places decimals.
func RoundedScores(coders []Coder, places int) ([]float64, error) {
	out, err := Scores(coders)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = Round(out[i], places)
	}

	return out, nil
}

// maxRoundPlaces is the most decimal digits a float64 can meaningfully carry.
const maxRoundPlaces = 15

// Round rounds v to places decimal digits, halves away from zero.
// A negative places is treated as zero and places above 15 as 15.
// NaN, ±Inf and values too large to hold a fractional part are returned unchanged.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1<<52 {
		return v
	}
	if places < 0 {
		places = 0
	}
	if places > maxRoundPlaces {
		places = maxRoundPlaces
	}
	scale := math.Pow(10, float64(places))
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}

	return math.Round(scaled) / scale
}

// Classify maps a BMI value to its WHO weight-status band.
func Classify(v float64) Category {
	switch {
	case math.IsNaN(v):
		return CategoryUnknown
	case v < 18.5:
		return Underweight
	case v < 25.0:
		return NormalWeight
	case v < 30.0:
		return Overweight
	case v < 35.0:
		return ObesityClassI
	case v < 40.0:
		return ObesityClassII
	default:
		return ObesityClassIII
	}
}
