package entry

import "errors"

// Domain errors
var (
	// ErrInvalidEntryID - identifier is not a 4-character PDB ID
	ErrInvalidEntryID = errors.New("entry: invalid entry ID")

	// ErrEntryNotFound - upstream yielded no data for the identifier
	ErrEntryNotFound = errors.New("entry: entry not found")
)
