package fetch

import (
	"context"
	"encoding/json"
	"net/http"

	"pdb-srv/pkg/log"
)

// IFetcher defines the interface for resilient upstream JSON fetches.
// Implementations are safe for concurrent use; every call owns its own
// retry counter and timers, so overlapping calls never affect each other.
type IFetcher interface {
	// Fetch executes one logical request. Transport failures and per-attempt
	// timeouts are retried with exponential backoff; a 404 on an entry lookup
	// URL is rescued through the GraphQL fallback endpoint; malformed 2xx
	// bodies degrade to a salvaged {"struct":{"title":...}} object. Fetch
	// never returns an error: absence of data is signaled by a nil result,
	// and diagnostics are logged.
	Fetch(ctx context.Context, req Request) json.RawMessage
}

// New creates a new fetcher. Returns the interface. Zero config fields fall
// back to the package defaults.
func New(cfg Config, l log.Logger) IFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = DefaultBackoffBase
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = DefaultTimeout
	}
	if cfg.FallbackURL == "" {
		cfg.FallbackURL = DefaultFallbackURL
	}
	return &fetcherImpl{
		cfg: cfg,
		l:   l,
		// No client-level timeout; each attempt carries its own deadline.
		doer:  &http.Client{},
		sleep: sleepContext,
	}
}
