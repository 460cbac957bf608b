package http

import (
	"pdb-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetBindingSites - List binding sites for one PDB entry
// @Summary Get binding sites
// @Description List ligand binding sites for one PDB entry, with curated active-site notes when upstream has none
// @Tags Annotation
// @Produce json
// @Param id path string true "PDB entry ID (4 characters)"
// @Success 200 {object} bindingSitesResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/entries/{id}/binding-sites [get]
func (h *handler) GetBindingSites(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processBindingSitesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "annotation.delivery.http.GetBindingSites: processBindingSitesRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.GetBindingSites(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "annotation.delivery.http.GetBindingSites: usecase GetBindingSites failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newBindingSitesResp(req.EntryID, output))
}

// GetUniprotComments - Functional annotations for one UniProt accession
// @Summary Get UniProt comments
// @Description Get function, catalytic activity, subunit and pathway annotations for one UniProtKB accession
// @Tags Annotation
// @Produce json
// @Param accession path string true "UniProtKB accession"
// @Success 200 {object} uniprotCommentsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/uniprot/{accession}/comments [get]
func (h *handler) GetUniprotComments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUniprotCommentsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "annotation.delivery.http.GetUniprotComments: processUniprotCommentsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetUniprotComments(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "annotation.delivery.http.GetUniprotComments: usecase GetUniprotComments failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUniprotCommentsResp(output))
}
