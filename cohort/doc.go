// Package cohort loads groups of coders from tabular or YAML files so they
// can be fed to the bmi package.
//
// Formats:
//
//   - CSV:  two numeric columns, weight then height, with SkipRecords header
//     records discarded (one by default). Lines starting with the Comment
//     rune ('#' by default) and blank lines are ignored and never counted.
//   - YAML: a top-level "coders" list of {height, weight} mappings.
//
// Values are parsed, never validated: a zero or negative height loads fine
// and only fails later, when a BMI is computed from it.
//
// Errors:
//
//   - ErrBadRecord:     a row has the wrong column count or a non-numeric cell.
//   - ErrUnknownFormat: Load was given a path with an unsupported extension.
//   - ErrBadOptions:    CSVOptions with an unusable delimiter or comment rune.
package cohort
