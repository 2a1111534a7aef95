// Package bmi computes Body Mass Index (BMI) values for coders and answers
// the two questions a health check cares about: "should this person diet?"
// and "who in this group is in the worst shape?".
//
// 🚀 What is BMI?
//
//	BMI = weight / height²   (kilograms, metres)
//
//	It is a coarse screening number, not a diagnosis. A BMI above 25.0
//	is treated as "diet recommended".
//
// ✨ Key features:
//   - Compute:               the raw formula, failing on zero height
//   - IsDietRecommended:     strict threshold check (BMI > DietThreshold)
//   - FindCoderWithWorstBMI: single pass, first-seen wins on ties
//   - Scores:                one BMI per coder, input order preserved
//   - Classify:              WHO weight-status bands
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/healthycoder/bmi"
//
//	coders := []bmi.Coder{
//	  bmi.NewCoder(1.82, 60.0),
//	  bmi.NewCoder(1.82, 98.0),
//	}
//	worst, ok, err := bmi.FindCoderWithWorstBMI(coders)
//	if err != nil {
//	  // handle ErrZeroHeight
//	}
//	if !ok {
//	  // empty input: nobody to report
//	}
//
// Errors:
//
//   - ErrZeroHeight: a height of exactly zero was supplied.
//
// Inputs are otherwise not validated: negative or NaN values flow through
// the formula and produce whatever it yields.
//
// Complexity:
//
//   - Compute, IsDietRecommended, Classify: O(1).
//   - FindCoderWithWorstBMI, Scores:       O(n) time, one BMI per element.
package bmi
