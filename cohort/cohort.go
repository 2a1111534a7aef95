package cohort

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/healthycoder/bmi"
	"gopkg.in/yaml.v3"
)

// ReadCSV decodes weight,height rows into coders.
//
// The first opts.SkipRecords records are discarded. Every remaining record must
// hold exactly two numeric fields; anything else yields ErrBadRecord wrapped
// with the source line number. Options the reader cannot use, such as a
// Comment equal to Comma, yield ErrBadOptions before any input is read.
func ReadCSV(r io.Reader, opts CSVOptions) ([]bmi.Coder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.Comment = opts.Comment
	cr.FieldsPerRecord = -1 // column count is checked per row below
	cr.TrimLeadingSpace = true

	coders := make([]bmi.Coder, 0)
	for n := 0; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cohort: read csv: %w", err)
		}
		if n < opts.SkipRecords {
			continue
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadRecord, line, len(rec))
		}
		weight, err := parseField(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight: %v", ErrBadRecord, line, err)
		}
		height, err := parseField(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: height: %v", ErrBadRecord, line, err)
		}
		coders = append(coders, bmi.NewCoder(height, weight))
	}

	return coders, nil
}

// ReadYAML decodes a {coders: [{height, weight}, ...]} document.
// Both keys are required on every entry. An empty document yields no coders.
func ReadYAML(r io.Reader) ([]bmi.Coder, error) {
	var doc yamlCohort
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cohort: decode yaml: %w", err)
	}

	coders := make([]bmi.Coder, 0, len(doc.Coders))
	for i, c := range doc.Coders {
		if c.Height == nil || c.Weight == nil {
			return nil, fmt.Errorf("%w: entry %d: height and weight are required", ErrBadRecord, i)
		}
		coders = append(coders, bmi.NewCoder(*c.Height, *c.Weight))
	}

	return coders, nil
}

// Load opens path and decodes it according to its extension:
// ".csv" with DefaultCSVOptions, ".yaml" or ".yml" as YAML.
func Load(path string) ([]bmi.Coder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cohort: open: %w", err)
	}
	defer f.Close()

	if ext == ".csv" {
		return ReadCSV(f, DefaultCSVOptions())
	}

	return ReadYAML(f)
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
