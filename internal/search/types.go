package search

import "pdb-srv/internal/model"

const (
	MinQueryLength = 2
	MaxQueryLength = 200

	DefaultLimit = 10
	MaxLimit     = 25

	// EnrichTopN is how many leading hits get their entry title resolved.
	EnrichTopN = 5
)

type SearchInput struct {
	Query string
	Limit int
}

type SearchOutput struct {
	Hits       []model.SearchHit
	TotalCount int
}
