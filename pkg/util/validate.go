package util

import (
	"errors"
	"regexp"
	"strings"
)

var (
	pdbIDPattern     = regexp.MustCompile(`^[0-9][A-Z0-9]{3}$`)
	accessionPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{5,9}$`)
)

// NormalizePDBID trims and uppercases an identifier. Upstream lookups are
// case-sensitive, so normalization happens before any URL is built.
func NormalizePDBID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// IsPDBID validates a normalized 4-character PDB identifier.
func IsPDBID(id string) error {
	if !pdbIDPattern.MatchString(id) {
		return errors.New("invalid PDB ID")
	}
	return nil
}

// NormalizeAccession trims and uppercases a UniProt accession.
func NormalizeAccession(accession string) string {
	return strings.ToUpper(strings.TrimSpace(accession))
}

// IsAccession validates a normalized UniProt accession.
func IsAccession(accession string) error {
	if !accessionPattern.MatchString(accession) {
		return errors.New("invalid UniProt accession")
	}
	return nil
}
