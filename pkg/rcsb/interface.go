package rcsb

import (
	"context"

	"pdb-srv/internal/model"
	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
)

// IRCSB defines the interface for the RCSB PDB Data and Search APIs.
// Implementations are safe for concurrent use. Entry identifiers must be
// uppercased by the caller before use.
type IRCSB interface {
	GetEntry(ctx context.Context, entryID string) (*model.EntryMetadata, error)
	GetPolymerEntities(ctx context.Context, entryID string) ([]model.PolymerEntity, error)
	GetLigands(ctx context.Context, entryID string) ([]model.Ligand, error)
	GetBindingSites(ctx context.Context, entryID string) ([]model.BindingSite, error)
	Search(ctx context.Context, query string, limit int) ([]model.SearchHit, int, error)
}

// NewRCSB creates a new RCSB client on top of the given fetcher. Returns the
// interface. Empty URL fields fall back to the public RCSB endpoints.
func NewRCSB(cfg RCSBConfig, fetcher fetch.IFetcher, l log.Logger) IRCSB {
	if cfg.DataURL == "" {
		cfg.DataURL = DefaultDataURL
	}
	if cfg.GraphQLURL == "" {
		cfg.GraphQLURL = DefaultGraphQLURL
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	return &rcsbImpl{
		cfg:     cfg,
		fetcher: fetcher,
		l:       l,
	}
}
