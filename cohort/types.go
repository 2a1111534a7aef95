package cohort

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for cohort loading.
var (
	// ErrBadRecord indicates a malformed CSV row or YAML entry.
	ErrBadRecord = errors.New("cohort: malformed record")
	// ErrUnknownFormat indicates Load could not pick a decoder from the file extension.
	ErrUnknownFormat = errors.New("cohort: unsupported file format")
	// ErrBadOptions indicates CSVOptions that the CSV reader cannot honour.
	ErrBadOptions = errors.New("cohort: invalid csv options")
)

// CSVOptions controls how ReadCSV treats its input.
type CSVOptions struct {
	// SkipRecords is the number of leading records to discard (header rows).
	// Comment and blank lines are dropped before counting and never consume it.
	SkipRecords int
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Comment starts a comment line when it is the first character. Zero disables comments.
	Comment rune
}

// DefaultCSVOptions returns CSVOptions with SkipRecords=1, Comma=',' and Comment='#'.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		SkipRecords: 1,
		Comma:       ',',
		Comment:     '#',
	}
}

// validate rejects options the CSV reader would fail on at every Read.
func (o CSVOptions) validate() error {
	if o.SkipRecords < 0 {
		return fmt.Errorf("%w: SkipRecords %d is negative", ErrBadOptions, o.SkipRecords)
	}
	comma := o.Comma
	if comma == 0 {
		comma = ','
	}
	if !validDelim(comma) {
		return fmt.Errorf("%w: delimiter %q", ErrBadOptions, comma)
	}
	if o.Comment != 0 && (o.Comment == comma || !validDelim(o.Comment)) {
		return fmt.Errorf("%w: comment %q", ErrBadOptions, o.Comment)
	}
	return nil
}

// validDelim mirrors encoding/csv's rules for Comma and Comment.
func validDelim(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// yamlCohort is the on-disk YAML document shape.
type yamlCohort struct {
	Coders []yamlCoder `yaml:"coders"`
}

type yamlCoder struct {
	Height *float64 `yaml:"height"`
	Weight *float64 `yaml:"weight"`
}
