package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// entryLookupID returns the trailing identifier when the URL is shaped like a
// single-entry lookup: the last path segment is exactly 4 characters and
// follows an "entry" segment. No case normalization is applied; callers are
// responsible for uppercasing identifiers before building URLs.
func entryLookupID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) < 2 {
		return ""
	}
	id := segs[len(segs)-1]
	if len(id) != 4 || segs[len(segs)-2] != "entry" {
		return ""
	}
	return id
}

// fallback issues the one-shot GraphQL rescue query for a 404 entry lookup.
// Any failure, including an empty entry in the reply, falls through silently
// so the caller keeps the original 404 handling.
func (f *fetcherImpl) fallback(ctx context.Context, id string, timeout time.Duration) json.RawMessage {
	query := fmt.Sprintf(`{ entry(entry_id:%q) { rcsb_id struct { title } } }`, id)
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil
	}

	status, respBody, err := f.attempt(ctx, http.MethodPost, f.cfg.FallbackURL, body, timeout)
	if err != nil {
		f.l.Debugf(ctx, "fetch.fallback: rescue request for %s failed: %v", id, err)
		return nil
	}
	if status < 200 || status > 299 {
		f.l.Debugf(ctx, "fetch.fallback: rescue request for %s returned status %d", id, status)
		return nil
	}

	var payload struct {
		Data struct {
			Entry json.RawMessage `json:"entry"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		f.l.Debugf(ctx, "fetch.fallback: failed to decode rescue reply for %s: %v", id, err)
		return nil
	}

	entry := bytes.TrimSpace(payload.Data.Entry)
	if len(entry) == 0 || bytes.Equal(entry, []byte("null")) {
		return nil
	}
	f.l.Infof(ctx, "fetch.fallback: rescued entry %s via GraphQL", id)
	return json.RawMessage(entry)
}
