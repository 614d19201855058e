package store

import (
	"fmt"
	"os"

	"houses/internal/domain"
)

// Report summarises one run over an input file.
type Report struct {
	Input       string          `json:"input"`
	Moves       int             `json:"moves"`
	Houses      int             `json:"houses"`
	Primary     domain.Position `json:"primary"`
	Secondary   domain.Position `json:"secondary"`
	Fingerprint string          `json:"fingerprint"`
}

// ReadInput returns the contents of the input file at path.
func ReadInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// SaveReport writes r to path.
func SaveReport(path string, r Report) error {
	if err := writeJSON(path, r, 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// LoadReport reads a report previously written by SaveReport.
// ok is false when no report exists at path.
func LoadReport(path string) (r Report, ok bool, err error) {
	ok, err = readJSON(path, &r)
	if err != nil {
		return Report{}, false, fmt.Errorf("load report: %w", err)
	}
	return r, ok, nil
}
