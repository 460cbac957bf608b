package repository

import (
	"context"

	"pdb-srv/internal/model"
)

//go:generate mockery --name KnowledgeRepository
type KnowledgeRepository interface {
	// ListActiveSiteNotes returns curated active-site annotations for one
	// entry. An entry with no notes yields an empty slice, not an error.
	ListActiveSiteNotes(ctx context.Context, entryID string) ([]model.BindingSite, error)
}
