package bmi

import "errors"

// ErrZeroHeight indicates a BMI was requested for a height of exactly zero.
var ErrZeroHeight = errors.New("bmi: height must be non-zero")

// DietThreshold is the BMI above which a diet is recommended.
const DietThreshold = 25.0

// Coder is one person's body measurements.
//
// Height is in metres, Weight in kilograms. No invariant is enforced:
// a zero Height is a valid value but cannot produce a BMI.
type Coder struct {
	Height float64
	Weight float64
}

// NewCoder builds a Coder. Height comes first, matching how a record is read aloud
// ("1.82 m, 98 kg").
func NewCoder(height, weight float64) Coder {
	return Coder{Height: height, Weight: weight}
}

// BMI returns the coder's Body Mass Index.
func (c Coder) BMI() (float64, error) {
	return Compute(c.Weight, c.Height)
}

// Category is a WHO weight-status band.
type Category int

const (
	// CategoryUnknown is reported for NaN input.
	CategoryUnknown Category = iota
	// Underweight: BMI < 18.5.
	Underweight
	// NormalWeight: 18.5 ≤ BMI < 25.
	NormalWeight
	// Overweight: 25 ≤ BMI < 30.
	Overweight
	// ObesityClassI: 30 ≤ BMI < 35.
	ObesityClassI
	// ObesityClassII: 35 ≤ BMI < 40.
	ObesityClassII
	// ObesityClassIII: BMI ≥ 40.
	ObesityClassIII
)

var categoryNames = [...]string{
	CategoryUnknown: "Unknown",
	Underweight:     "Underweight",
	NormalWeight:    "Normal weight",
	Overweight:      "Overweight",
	ObesityClassI:   "Obesity class I",
	ObesityClassII:  "Obesity class II",
	ObesityClassIII: "Obesity class III",
}

// String returns the human-readable band name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}

	return categoryNames[c]
}
