package annotation

import "pdb-srv/internal/model"

const (
	// EntryIDLength is the fixed length of a PDB identifier.
	EntryIDLength = 4
)

type GetBindingSitesInput struct {
	EntryID string
}

type GetBindingSitesOutput struct {
	Sites []model.BindingSite
}

type GetUniprotCommentsInput struct {
	Accession string
}

type GetUniprotCommentsOutput struct {
	Comments model.UniprotComments
}
