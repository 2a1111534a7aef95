package bmi_test

import (
	"testing"

	"github.com/katalvlaran/healthycoder/bmi"
)

// benchmarkCoders builds n coders with steadily growing height and weight.
func benchmarkCoders(n int) []bmi.Coder {
	coders := make([]bmi.Coder, n)
	for i := range coders {
		coders[i] = bmi.NewCoder(1.0+float64(i), 10.0+float64(i))
	}

	return coders
}

// BenchmarkFindCoderWithWorstBMI_10k measures the single-pass scan on 10 000 coders.
func BenchmarkFindCoderWithWorstBMI_10k(b *testing.B) {
	coders := benchmarkCoders(10000)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := bmi.FindCoderWithWorstBMI(coders); err != nil {
			b.Fatalf("FindCoderWithWorstBMI failed: %v", err)
		}
	}
}

// BenchmarkScores_10k measures score extraction, dominated by the output allocation.
func BenchmarkScores_10k(b *testing.B) {
	coders := benchmarkCoders(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bmi.Scores(coders); err != nil {
			b.Fatalf("Scores failed: %v", err)
		}
	}
}
