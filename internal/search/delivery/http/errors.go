package http

import (
	"errors"

	"pdb-srv/internal/search"
	pkgErrors "pdb-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errQueryTooShort = pkgErrors.NewHTTPError(
		400, "Query too short (min 2 characters)",
	)
	errQueryTooLong = pkgErrors.NewHTTPError(
		400, "Query too long (max 200 characters)",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		500, "Search failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrQueryTooShort):
		return errQueryTooShort
	case errors.Is(err, search.ErrQueryTooLong):
		return errQueryTooLong
	case errors.Is(err, search.ErrSearchFailed):
		return errSearchFailed
	default:
		panic(err)
	}
}
