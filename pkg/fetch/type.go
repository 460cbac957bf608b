package fetch

import (
	"context"
	"net/http"
	"time"

	"pdb-srv/pkg/log"
)

// Request describes one logical fetch. It is immutable once an attempt
// starts.
type Request struct {
	URL    string
	Method string // GET (default) or POST
	Body   any    // JSON-serialized for POST; never sent for GET
	// Timeout bounds each individual attempt. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Config holds fetcher configuration.
type Config struct {
	UserAgent      string
	MaxAttempts    int
	BackoffBase    time.Duration
	DefaultTimeout time.Duration
	// FallbackURL is the GraphQL endpoint used to rescue 404 entry lookups.
	FallbackURL string
}

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// fetcherImpl implements IFetcher.
type fetcherImpl struct {
	cfg   Config
	l     log.Logger
	doer  Doer
	sleep func(ctx context.Context, d time.Duration) error
}

// attemptState drives the retry loop. Only transport-level failures move the
// machine through Backoff; HTTP statuses end the loop in Succeeded.
type attemptState int

const (
	stateAttempting attemptState = iota
	stateBackoff
	stateSucceeded
	stateExhausted
)
