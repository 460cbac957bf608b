package entry

import "pdb-srv/internal/model"

const (
	// EntryIDLength is the fixed length of a PDB identifier.
	EntryIDLength = 4
)

type GetDetailsInput struct {
	EntryID string
}

type GetDetailsOutput struct {
	Entry           model.EntryMetadata
	PolymerEntities []model.PolymerEntity
	Ligands         []model.Ligand
	CacheHit        bool
}

type GetLigandsInput struct {
	EntryID string
}

type GetLigandsOutput struct {
	Ligands []model.Ligand
}

type GetPolymerEntitiesInput struct {
	EntryID string
}

type GetPolymerEntitiesOutput struct {
	Entities []model.PolymerEntity
}
