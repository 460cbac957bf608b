package annotation

import "errors"

// Domain errors
var (
	// ErrInvalidEntryID - identifier is not a 4-character PDB ID
	ErrInvalidEntryID = errors.New("annotation: invalid entry ID")

	// ErrInvalidAccession - identifier is not a UniProt accession
	ErrInvalidAccession = errors.New("annotation: invalid accession")

	// ErrEntryNotFound - upstream yielded no data for the entry
	ErrEntryNotFound = errors.New("annotation: entry not found")

	// ErrAccessionNotFound - upstream yielded no data for the accession
	ErrAccessionNotFound = errors.New("annotation: accession not found")
)
