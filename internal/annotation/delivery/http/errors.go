package http

import (
	"errors"

	"pdb-srv/internal/annotation"
	pkgErrors "pdb-srv/pkg/errors"
)

var (
	errInvalidEntryID = pkgErrors.NewHTTPError(
		400, "Invalid PDB entry ID",
	)
	errInvalidAccession = pkgErrors.NewHTTPError(
		400, "Invalid UniProt accession",
	)
	errEntryNotFound = pkgErrors.NewHTTPError(
		404, "Entry not found",
	)
	errAccessionNotFound = pkgErrors.NewHTTPError(
		404, "Accession not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, annotation.ErrInvalidEntryID):
		return errInvalidEntryID
	case errors.Is(err, annotation.ErrInvalidAccession):
		return errInvalidAccession
	case errors.Is(err, annotation.ErrEntryNotFound):
		return errEntryNotFound
	case errors.Is(err, annotation.ErrAccessionNotFound):
		return errAccessionNotFound
	default:
		panic(err)
	}
}
