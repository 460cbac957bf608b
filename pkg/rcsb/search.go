package rcsb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"pdb-srv/internal/model"
	"pdb-srv/pkg/fetch"
)

// Search runs a full-text query against the Search API and returns entry
// hits plus the upstream total count. An empty result set is not an error.
func (r *rcsbImpl) Search(ctx context.Context, query string, limit int) ([]model.SearchHit, int, error) {
	body := searchRequest{
		Query: searchQuery{
			Type:       "terminal",
			Service:    "full_text",
			Parameters: searchParameters{Value: query},
		},
		ReturnType: "entry",
		RequestOptions: requestOptions{
			Paginate: paginate{Start: 0, Rows: limit},
		},
	}

	raw := r.fetcher.Fetch(ctx, fetch.Request{
		URL:     r.cfg.SearchURL,
		Method:  http.MethodPost,
		Body:    body,
		Timeout: r.cfg.Timeout,
	})
	if raw == nil {
		return nil, 0, ErrNoData
	}

	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, 0, fmt.Errorf("rcsb: failed to unmarshal search reply: %w", err)
	}

	hits := make([]model.SearchHit, 0, len(resp.ResultSet))
	for _, item := range resp.ResultSet {
		hits = append(hits, model.SearchHit{
			Identifier: item.Identifier,
			Score:      item.Score,
		})
	}
	return hits, resp.TotalCount, nil
}
