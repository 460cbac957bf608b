package http

import "pdb-srv/internal/annotation"

// =====================================================
// Request DTOs
// =====================================================

type bindingSitesReq struct {
	EntryID string
}

func (r bindingSitesReq) toInput() annotation.GetBindingSitesInput {
	return annotation.GetBindingSitesInput{EntryID: r.EntryID}
}

type uniprotCommentsReq struct {
	Accession string
}

func (r uniprotCommentsReq) toInput() annotation.GetUniprotCommentsInput {
	return annotation.GetUniprotCommentsInput{Accession: r.Accession}
}

// =====================================================
// Response DTOs
// =====================================================

type bindingSitesResp struct {
	EntryID string            `json:"entry_id"`
	Sites   []bindingSiteResp `json:"sites"`
}

type bindingSiteResp struct {
	Label   string   `json:"label"`
	CompID  string   `json:"comp_id,omitempty"`
	Chains  []string `json:"chains,omitempty"`
	Details string   `json:"details,omitempty"`
	Source  string   `json:"source"`
}

type uniprotCommentsResp struct {
	Accession         string   `json:"accession"`
	ProteinName       string   `json:"protein_name,omitempty"`
	Function          []string `json:"function,omitempty"`
	CatalyticActivity []string `json:"catalytic_activity,omitempty"`
	Subunit           []string `json:"subunit,omitempty"`
	Pathway           []string `json:"pathway,omitempty"`
}

func (h *handler) newBindingSitesResp(entryID string, output annotation.GetBindingSitesOutput) bindingSitesResp {
	resp := bindingSitesResp{EntryID: entryID, Sites: []bindingSiteResp{}}
	for _, s := range output.Sites {
		resp.Sites = append(resp.Sites, bindingSiteResp{
			Label:   s.Label,
			CompID:  s.CompID,
			Chains:  s.Chains,
			Details: s.Details,
			Source:  string(s.Source),
		})
	}
	return resp
}

func (h *handler) newUniprotCommentsResp(output annotation.GetUniprotCommentsOutput) uniprotCommentsResp {
	c := output.Comments
	return uniprotCommentsResp{
		Accession:         c.Accession,
		ProteinName:       c.ProteinName,
		Function:          c.Function,
		CatalyticActivity: c.CatalyticActivity,
		Subunit:           c.Subunit,
		Pathway:           c.Pathway,
	}
}
