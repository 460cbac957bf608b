package http

import "pdb-srv/internal/search"

// =====================================================
// Request DTOs
// =====================================================

type searchReq struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}

func (r searchReq) toInput() search.SearchInput {
	return search.SearchInput{
		Query: r.Query,
		Limit: r.Limit,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type searchResp struct {
	Hits       []searchHitResp `json:"hits"`
	TotalCount int             `json:"total_count"`
}

type searchHitResp struct {
	Identifier string  `json:"identifier"`
	Score      float64 `json:"score"`
	Title      string  `json:"title,omitempty"`
}

func (h *handler) newSearchResp(output search.SearchOutput) searchResp {
	resp := searchResp{
		Hits:       make([]searchHitResp, len(output.Hits)),
		TotalCount: output.TotalCount,
	}
	for i, hit := range output.Hits {
		resp.Hits[i] = searchHitResp{
			Identifier: hit.Identifier,
			Score:      hit.Score,
			Title:      hit.Title,
		}
	}
	return resp
}
