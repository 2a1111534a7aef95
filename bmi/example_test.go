package bmi_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/healthycoder/bmi"
)

// ExampleIsDietRecommended checks a single coder against the 25.0 threshold.
func ExampleIsDietRecommended() {
	ok, err := bmi.IsDietRecommended(89.0, 1.72)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := bmi.Compute(89.0, 1.72)
	fmt.Printf("BMI %.2f (%s), diet recommended: %v\n", v, bmi.Classify(v), ok)

	_, err = bmi.IsDietRecommended(89.0, 0)
	fmt.Println(errors.Is(err, bmi.ErrZeroHeight))
	// Output:
	// BMI 30.08 (Obesity class I), diet recommended: true
	// true
}

// ExampleFindCoderWithWorstBMI shows both the found and the absent result.
func ExampleFindCoderWithWorstBMI() {
	coders := []bmi.Coder{
		bmi.NewCoder(1.82, 60.0),
		bmi.NewCoder(1.82, 98.0),
		bmi.NewCoder(1.82, 64.7),
	}
	worst, ok, _ := bmi.FindCoderWithWorstBMI(coders)
	fmt.Printf("found=%v height=%.2f weight=%.1f\n", ok, worst.Height, worst.Weight)

	_, ok, _ = bmi.FindCoderWithWorstBMI(nil)
	fmt.Printf("found=%v\n", ok)
	// Output:
	// found=true height=1.82 weight=98.0
	// found=false
}

// ExampleRoundedScores prints two-decimal scores in input order.
func ExampleRoundedScores() {
	coders := []bmi.Coder{
		bmi.NewCoder(1.82, 60.0),
		bmi.NewCoder(1.82, 98.0),
		bmi.NewCoder(1.82, 64.7),
	}
	scores, _ := bmi.RoundedScores(coders, 2)
	fmt.Println(scores)
	// Output:
	// [18.11 29.59 19.53]
}
