package http

import (
	"errors"

	"pdb-srv/internal/entry"
	pkgErrors "pdb-srv/pkg/errors"
)

var (
	errInvalidEntryID = pkgErrors.NewHTTPError(
		400, "Invalid PDB entry ID",
	)
	errEntryNotFound = pkgErrors.NewHTTPError(
		404, "Entry not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, entry.ErrInvalidEntryID):
		return errInvalidEntryID
	case errors.Is(err, entry.ErrEntryNotFound):
		return errEntryNotFound
	default:
		panic(err)
	}
}
