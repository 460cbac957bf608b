package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"pdb-srv/pkg/log"
)

type fakeCall struct {
	method string
	url    string
	body   string
	header http.Header
}

type fakeReply struct {
	status int
	body   string
	err    error
}

// fakeDoer replays a scripted sequence of replies and records every request.
type fakeDoer struct {
	calls   []fakeCall
	replies []fakeReply
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		body = string(b)
	}
	d.calls = append(d.calls, fakeCall{
		method: req.Method,
		url:    req.URL.String(),
		body:   body,
		header: req.Header.Clone(),
	})

	i := len(d.calls) - 1
	if i >= len(d.replies) {
		i = len(d.replies) - 1
	}
	r := d.replies[i]
	if r.err != nil {
		return nil, r.err
	}
	return &http.Response{
		StatusCode: r.status,
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Header:     http.Header{},
	}, nil
}

type netErr struct{}

func (netErr) Error() string { return "connection reset" }

func newTestFetcher(doer *fakeDoer) (*fetcherImpl, *[]time.Duration) {
	var slept []time.Duration
	f := &fetcherImpl{
		cfg: Config{
			UserAgent:      DefaultUserAgent,
			MaxAttempts:    DefaultMaxAttempts,
			BackoffBase:    DefaultBackoffBase,
			DefaultTimeout: DefaultTimeout,
			FallbackURL:    DefaultFallbackURL,
		},
		l:    log.NewNop(),
		doer: doer,
		sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	}
	return f, &slept
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 200, body: `{"rcsb_id":"1ABC"}`},
		}}
		f, slept := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"})
		if string(got) != `{"rcsb_id":"1ABC"}` {
			t.Errorf("result mismatch: got %s", got)
		}
		if len(doer.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(doer.calls))
		}
		call := doer.calls[0]
		if call.method != http.MethodGet {
			t.Errorf("method mismatch: got %s", call.method)
		}
		if ua := call.header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("user-agent mismatch: got %q", ua)
		}
		if accept := call.header.Get("Accept"); accept != "application/json" {
			t.Errorf("accept mismatch: got %q", accept)
		}
		if ct := call.header.Get("Content-Type"); ct != "" {
			t.Errorf("unexpected content-type on GET: %q", ct)
		}
		if len(*slept) != 0 {
			t.Errorf("unexpected backoff: %v", *slept)
		}
	})

	t.Run("post sends json body and content type", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 200, body: `{"ok":true}`},
		}}
		f, _ := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{
			URL:    "https://search.example.org/query",
			Method: http.MethodPost,
			Body:   map[string]string{"query": "lysozyme"},
		})
		if got == nil {
			t.Fatal("expected a result")
		}
		call := doer.calls[0]
		if ct := call.header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type mismatch: got %q", ct)
		}
		if call.body != `{"query":"lysozyme"}` {
			t.Errorf("body mismatch: got %s", call.body)
		}
	})

	t.Run("transient failure then success retries once", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{err: netErr{}},
			{status: 200, body: `{"rcsb_id":"1ABC"}`},
		}}
		f, slept := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"})
		if string(got) != `{"rcsb_id":"1ABC"}` {
			t.Errorf("result mismatch: got %s", got)
		}
		if len(doer.calls) != 2 {
			t.Errorf("expected 2 calls, got %d", len(doer.calls))
		}
		if len(*slept) != 1 || (*slept)[0] != 1*time.Second {
			t.Errorf("expected one 1s backoff, got %v", *slept)
		}
	})

	t.Run("exhausted attempts yield nil", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{err: netErr{}}, {err: netErr{}}, {err: netErr{}},
		}}
		f, slept := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"})
		if got != nil {
			t.Errorf("expected nil, got %s", got)
		}
		if len(doer.calls) != 3 {
			t.Errorf("expected 3 calls, got %d", len(doer.calls))
		}
		want := []time.Duration{1 * time.Second, 2 * time.Second}
		if len(*slept) != len(want) || (*slept)[0] != want[0] || (*slept)[1] != want[1] {
			t.Errorf("backoff schedule mismatch: got %v, want %v", *slept, want)
		}
	})

	t.Run("http error status is not retried", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 500, body: `upstream exploded`},
		}}
		f, slept := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"})
		if got != nil {
			t.Errorf("expected nil, got %s", got)
		}
		if len(doer.calls) != 1 {
			t.Errorf("expected 1 call, got %d", len(doer.calls))
		}
		if len(*slept) != 0 {
			t.Errorf("unexpected backoff: %v", *slept)
		}
	})

	t.Run("404 entry lookup rescued via graphql fallback", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 404, body: `{"message":"not found"}`},
			{status: 200, body: `{"data":{"entry":{"rcsb_id":"6LU7","struct":{"title":"X"}}}}`},
		}}
		f, _ := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/6LU7"})
		if string(got) != `{"rcsb_id":"6LU7","struct":{"title":"X"}}` {
			t.Errorf("result mismatch: got %s", got)
		}
		if len(doer.calls) != 2 {
			t.Fatalf("expected 2 calls, got %d", len(doer.calls))
		}
		rescue := doer.calls[1]
		if rescue.method != http.MethodPost {
			t.Errorf("fallback method mismatch: got %s", rescue.method)
		}
		if rescue.url != DefaultFallbackURL {
			t.Errorf("fallback URL mismatch: got %s", rescue.url)
		}
		if !strings.Contains(rescue.body, `entry(entry_id:\"6LU7\")`) {
			t.Errorf("fallback query mismatch: got %s", rescue.body)
		}
	})

	t.Run("404 with empty fallback entry yields nil", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 404, body: `{"message":"not found"}`},
			{status: 200, body: `{"data":{"entry":null}}`},
		}}
		f, _ := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/XXXX"})
		if got != nil {
			t.Errorf("expected nil, got %s", got)
		}
		if len(doer.calls) != 2 {
			t.Errorf("expected 2 calls, got %d", len(doer.calls))
		}
	})

	t.Run("404 on non-entry URL skips fallback", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 404, body: `{"message":"not found"}`},
		}}
		f, _ := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/chemcomp/ATP"})
		if got != nil {
			t.Errorf("expected nil, got %s", got)
		}
		if len(doer.calls) != 1 {
			t.Errorf("expected 1 call, got %d", len(doer.calls))
		}
	})

	t.Run("malformed body salvages title", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 200, body: `<html>"title": "Foo" garbage`},
		}}
		f, _ := newTestFetcher(doer)

		got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"})
		if string(got) != `{"struct":{"title":"Foo"}}` {
			t.Errorf("salvage mismatch: got %s", got)
		}
	})

	t.Run("empty non-json body yields nil", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 200, body: ""},
		}}
		f, _ := newTestFetcher(doer)

		if got := f.Fetch(ctx, Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"}); got != nil {
			t.Errorf("expected nil, got %s", got)
		}
	})

	t.Run("identical successful calls give equal results", func(t *testing.T) {
		doer := &fakeDoer{replies: []fakeReply{
			{status: 200, body: `{"rcsb_id":"1ABC"}`},
			{status: 200, body: `{"rcsb_id":"1ABC"}`},
		}}
		f, _ := newTestFetcher(doer)

		req := Request{URL: "https://data.example.org/rest/v1/core/entry/1ABC"}
		first := f.Fetch(ctx, req)
		second := f.Fetch(ctx, req)
		if !bytes.Equal(first, second) {
			t.Errorf("results differ: %s vs %s", first, second)
		}
	})
}

func TestEntryLookupID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://data.example.org/rest/v1/core/entry/6LU7", "6LU7"},
		{"https://data.example.org/rest/v1/core/entry/6lu7", "6lu7"},
		{"https://data.example.org/rest/v1/core/entry/TOOLONG", ""},
		{"https://data.example.org/rest/v1/core/entry/6LU", ""},
		{"https://data.example.org/rest/v1/core/chemcomp/ATP2", ""},
		{"https://data.example.org/entry", ""},
		{"https://data.example.org/", ""},
	}
	for _, c := range cases {
		if got := entryLookupID(c.url); got != c.want {
			t.Errorf("entryLookupID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestSalvageTitle(t *testing.T) {
	t.Run("escaped quotes in title", func(t *testing.T) {
		got := salvageTitle([]byte(`junk "title": "Spike \"RBD\" domain" junk`))
		if string(got) != `{"struct":{"title":"Spike \"RBD\" domain"}}` {
			t.Errorf("salvage mismatch: got %s", got)
		}
	})

	t.Run("no title field", func(t *testing.T) {
		if got := salvageTitle([]byte(`{"name": broken`)); got != nil {
			t.Errorf("expected nil, got %s", got)
		}
	})
}

func TestBackoffDelay(t *testing.T) {
	f, _ := newTestFetcher(&fakeDoer{replies: []fakeReply{{status: 200}}})
	for attempt, want := range map[int]time.Duration{
		1: 1 * time.Second,
		2: 2 * time.Second,
		3: 4 * time.Second,
	} {
		if got := f.backoffDelay(attempt); got != want {
			t.Errorf("backoffDelay(%d) = %v, want %v", attempt, got, want)
		}
	}
}
