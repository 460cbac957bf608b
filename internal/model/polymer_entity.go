package model

// PolymerEntity describes one polymer entity (usually a protein chain group)
// within an entry.
type PolymerEntity struct {
	EntityID       string   `json:"entity_id"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type,omitempty"`
	SequenceLength int      `json:"sequence_length,omitempty"`
	Organisms      []string `json:"organisms,omitempty"`
	UniprotIDs     []string `json:"uniprot_ids,omitempty"`
}

// SearchHit is one result of a full-text structure search.
type SearchHit struct {
	Identifier string  `json:"identifier"`
	Score      float64 `json:"score"`
	Title      string  `json:"title,omitempty"`
}
