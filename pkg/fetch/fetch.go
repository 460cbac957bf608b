package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Fetch implements IFetcher.
func (f *fetcherImpl) Fetch(ctx context.Context, req Request) json.RawMessage {
	if req.URL == "" {
		f.l.Errorf(ctx, "fetch.Fetch: empty URL")
		return nil
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = f.cfg.DefaultTimeout
	}

	var body []byte
	if method == http.MethodPost && req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			f.l.Errorf(ctx, "fetch.Fetch: failed to marshal request body for %s: %v", req.URL, err)
			return nil
		}
		body = b
	}

	status, respBody, ok := f.run(ctx, method, req.URL, body, timeout)
	if !ok {
		return nil
	}

	if status == http.StatusNotFound {
		if id := entryLookupID(req.URL); id != "" {
			if rescued := f.fallback(ctx, id, timeout); rescued != nil {
				return rescued
			}
		}
	}

	if status < 200 || status > 299 {
		f.l.Errorf(ctx, "fetch.Fetch: %s returned status %d: %s", req.URL, status, truncate(respBody))
		return nil
	}

	if trimmed := bytes.TrimSpace(respBody); len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	if salvaged := salvageTitle(respBody); salvaged != nil {
		f.l.Warnf(ctx, "fetch.Fetch: %s returned a malformed body; salvaged title field", req.URL)
		return salvaged
	}
	f.l.Errorf(ctx, "fetch.Fetch: %s returned an unparsable body: %s", req.URL, truncate(respBody))
	return nil
}

// run drives the retry state machine until a response is obtained (any
// status) or the attempt budget is exhausted.
func (f *fetcherImpl) run(ctx context.Context, method, url string, body []byte, timeout time.Duration) (int, []byte, bool) {
	var (
		state    = stateAttempting
		attempt  = 0
		status   int
		respBody []byte
	)
	for {
		switch state {
		case stateAttempting:
			attempt++
			var err error
			status, respBody, err = f.attempt(ctx, method, url, body, timeout)
			if err == nil {
				state = stateSucceeded
				break
			}
			f.l.Warnf(ctx, "fetch.run: attempt %d/%d for %s failed: %v", attempt, f.cfg.MaxAttempts, url, err)
			if attempt >= f.cfg.MaxAttempts {
				state = stateExhausted
			} else {
				state = stateBackoff
			}
		case stateBackoff:
			if err := f.sleep(ctx, f.backoffDelay(attempt)); err != nil {
				// Canceled while waiting; no point in another attempt.
				state = stateExhausted
			} else {
				state = stateAttempting
			}
		case stateSucceeded:
			return status, respBody, true
		case stateExhausted:
			f.l.Errorf(ctx, "fetch.run: giving up on %s after %d attempts", url, attempt)
			return 0, nil, false
		}
	}
}

// attempt issues a single request under its own deadline. Reading the body
// is part of the attempt, so a stall mid-body counts as a timeout.
func (f *fetcherImpl) attempt(ctx context.Context, method, url string, body []byte, timeout time.Duration) (int, []byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.doer.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// backoffDelay returns base * 2^(attempt-1).
func (f *fetcherImpl) backoffDelay(attempt int) time.Duration {
	return f.cfg.BackoffBase << (attempt - 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(b []byte) string {
	if len(b) <= maxLoggedBody {
		return string(b)
	}
	return string(b[:maxLoggedBody]) + "..."
}
