// Package healthycoder is a small toolkit for Body Mass Index checks on
// groups of coders.
//
// 🚀 What is in here?
//
//	A pure-Go library plus a thin command-line front end:
//		• Core formula: BMI = weight / height², with a strict zero-height fault
//		• Diet check: BMI strictly above 25.0
//		• Group scans: worst BMI in one pass, per-coder score lists
//		• Cohort files: CSV (weight,height) and YAML loaders
//
// Under the hood, everything is organized under these packages:
//
//	bmi/          — Coder record, Compute, IsDietRecommended, FindCoderWithWorstBMI, Scores
//	cohort/       — CSV / YAML loaders producing []bmi.Coder
//	cmd/bmicalc/  — cobra CLI over bmi and cohort, logging with zap
//
// Quick example:
//
//	ok, err := bmi.IsDietRecommended(89.0, 1.72) // true, BMI ≈ 30.08
//
//	go get github.com/katalvlaran/healthycoder/bmi
package healthycoder
