package rcsb

import "errors"

const (
	// DefaultDataURL is the RCSB Data API REST base.
	DefaultDataURL = "https://data.rcsb.org/rest/v1/core"
	// DefaultGraphQLURL is the RCSB Data API GraphQL endpoint.
	DefaultGraphQLURL = "https://data.rcsb.org/graphql"
	// DefaultSearchURL is the RCSB Search API endpoint.
	DefaultSearchURL = "https://search.rcsb.org/rcsbsearch/v2/query"
)

// ErrNoData is returned when the upstream yields nothing usable. The fetcher
// collapses all failure classes (exhausted retries, HTTP errors, unparsable
// bodies) into this single signal.
var ErrNoData = errors.New("rcsb: no data available")
