package http

import (
	"pdb-srv/internal/entry"
	"pdb-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type entryIDReq struct {
	EntryID string
}

func (r entryIDReq) toDetailsInput() entry.GetDetailsInput {
	return entry.GetDetailsInput{EntryID: r.EntryID}
}

func (r entryIDReq) toLigandsInput() entry.GetLigandsInput {
	return entry.GetLigandsInput{EntryID: r.EntryID}
}

func (r entryIDReq) toPolymerEntitiesInput() entry.GetPolymerEntitiesInput {
	return entry.GetPolymerEntitiesInput{EntryID: r.EntryID}
}

// =====================================================
// Response DTOs
// =====================================================

type entryDetailsResp struct {
	EntryID         string              `json:"entry_id"`
	Title           string              `json:"title"`
	Methods         []string            `json:"methods,omitempty"`
	Resolution      []float64           `json:"resolution,omitempty"`
	MolecularWeight float64             `json:"molecular_weight,omitempty"`
	Keywords        string              `json:"keywords,omitempty"`
	DepositDate     string              `json:"deposit_date,omitempty"`
	ReleaseDate     string              `json:"release_date,omitempty"`
	Citation        *citationResp       `json:"citation,omitempty"`
	PolymerEntities []polymerEntityResp `json:"polymer_entities,omitempty"`
	Ligands         []ligandResp        `json:"ligands,omitempty"`
	CacheHit        bool                `json:"cache_hit"`
}

type citationResp struct {
	Title   string   `json:"title,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Journal string   `json:"journal,omitempty"`
	Year    int      `json:"year,omitempty"`
	DOI     string   `json:"doi,omitempty"`
}

type polymerEntityResp struct {
	EntityID       string   `json:"entity_id"`
	Description    string   `json:"description,omitempty"`
	Type           string   `json:"type,omitempty"`
	SequenceLength int      `json:"sequence_length,omitempty"`
	Organisms      []string `json:"organisms,omitempty"`
	UniprotIDs     []string `json:"uniprot_ids,omitempty"`
}

type ligandResp struct {
	CompID        string   `json:"comp_id"`
	Name          string   `json:"name,omitempty"`
	Formula       string   `json:"formula,omitempty"`
	FormulaWeight float64  `json:"formula_weight,omitempty"`
	Chains        []string `json:"chains,omitempty"`
}

type ligandsResp struct {
	EntryID string       `json:"entry_id"`
	Ligands []ligandResp `json:"ligands"`
}

type polymerEntitiesResp struct {
	EntryID  string              `json:"entry_id"`
	Entities []polymerEntityResp `json:"entities"`
}

func newLigandResp(l model.Ligand) ligandResp {
	return ligandResp{
		CompID:        l.CompID,
		Name:          l.Name,
		Formula:       l.Formula,
		FormulaWeight: l.FormulaWeight,
		Chains:        l.Chains,
	}
}

func newPolymerEntityResp(e model.PolymerEntity) polymerEntityResp {
	return polymerEntityResp{
		EntityID:       e.EntityID,
		Description:    e.Description,
		Type:           e.Type,
		SequenceLength: e.SequenceLength,
		Organisms:      e.Organisms,
		UniprotIDs:     e.UniprotIDs,
	}
}

func (h *handler) newEntryDetailsResp(output entry.GetDetailsOutput) entryDetailsResp {
	resp := entryDetailsResp{
		EntryID:         output.Entry.RcsbID,
		Title:           output.Entry.Struct.Title,
		Resolution:      output.Entry.EntryInfo.ResolutionCombined,
		MolecularWeight: output.Entry.EntryInfo.MolecularWeight,
		DepositDate:     output.Entry.AccessionInfo.DepositDate,
		ReleaseDate:     output.Entry.AccessionInfo.InitialReleaseDate,
		CacheHit:        output.CacheHit,
	}

	for _, m := range output.Entry.Exptl {
		resp.Methods = append(resp.Methods, m.Method)
	}
	if output.Entry.StructKeywords != nil {
		resp.Keywords = output.Entry.StructKeywords.PdbxKeywords
	}
	if c := output.Entry.PrimaryCitation; c != nil {
		resp.Citation = &citationResp{
			Title:   c.Title,
			Authors: c.Authors,
			Journal: c.JournalAbbrev,
			Year:    c.Year,
			DOI:     c.DOI,
		}
	}
	for _, e := range output.PolymerEntities {
		resp.PolymerEntities = append(resp.PolymerEntities, newPolymerEntityResp(e))
	}
	for _, l := range output.Ligands {
		resp.Ligands = append(resp.Ligands, newLigandResp(l))
	}

	return resp
}

func (h *handler) newLigandsResp(entryID string, output entry.GetLigandsOutput) ligandsResp {
	resp := ligandsResp{EntryID: entryID, Ligands: []ligandResp{}}
	for _, l := range output.Ligands {
		resp.Ligands = append(resp.Ligands, newLigandResp(l))
	}
	return resp
}

func (h *handler) newPolymerEntitiesResp(entryID string, output entry.GetPolymerEntitiesOutput) polymerEntitiesResp {
	resp := polymerEntitiesResp{EntryID: entryID, Entities: []polymerEntityResp{}}
	for _, e := range output.Entities {
		resp.Entities = append(resp.Entities, newPolymerEntityResp(e))
	}
	return resp
}
