package fetch

import "time"

const (
	// DefaultUserAgent identifies this service to upstream APIs.
	DefaultUserAgent = "pdb-srv/1.0"
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts is the total attempt budget per call.
	DefaultMaxAttempts = 3
	// DefaultBackoffBase is the first backoff delay; it doubles per attempt.
	DefaultBackoffBase = 1 * time.Second
	// DefaultFallbackURL is the RCSB GraphQL endpoint used for 404 rescue.
	DefaultFallbackURL = "https://data.rcsb.org/graphql"

	// maxLoggedBody caps response bytes included in diagnostics.
	maxLoggedBody = 300
)
