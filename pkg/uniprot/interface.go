package uniprot

import (
	"context"

	"pdb-srv/internal/model"
	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
)

// IUniprot defines the interface for UniProtKB functional annotations.
// Implementations are safe for concurrent use.
type IUniprot interface {
	GetComments(ctx context.Context, accession string) (*model.UniprotComments, error)
}

// NewUniprot creates a new UniProt client on top of the given fetcher.
// Returns the interface.
func NewUniprot(cfg UniprotConfig, fetcher fetch.IFetcher, l log.Logger) IUniprot {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &uniprotImpl{
		cfg:     cfg,
		fetcher: fetcher,
		l:       l,
	}
}
