package search

import "errors"

// Domain errors
var (
	// ErrQueryTooShort - query below the minimum length
	ErrQueryTooShort = errors.New("search: query too short")

	// ErrQueryTooLong - query above the maximum length
	ErrQueryTooLong = errors.New("search: query too long")

	// ErrSearchFailed - upstream search request failed
	ErrSearchFailed = errors.New("search: search failed")
)
