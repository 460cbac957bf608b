package http

import (
	"pdb-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDetails - Fetch the full record for one PDB entry
// @Summary Get entry details
// @Description Get metadata, polymer entities and bound ligands for one PDB entry
// @Tags Entry
// @Produce json
// @Param id path string true "PDB entry ID (4 characters)"
// @Success 200 {object} entryDetailsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/entries/{id} [get]
func (h *handler) GetDetails(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processEntryIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetDetails: processEntryIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.GetDetails(ctx, req.toDetailsInput())
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetDetails: usecase GetDetails failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newEntryDetailsResp(output))
}

// GetLigands - List the ligands bound in one PDB entry
// @Summary Get entry ligands
// @Description List the non-polymer chemical components bound in one PDB entry
// @Tags Entry
// @Produce json
// @Param id path string true "PDB entry ID (4 characters)"
// @Success 200 {object} ligandsResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/entries/{id}/ligands [get]
func (h *handler) GetLigands(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEntryIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetLigands: processEntryIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetLigands(ctx, req.toLigandsInput())
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetLigands: usecase GetLigands failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLigandsResp(req.EntryID, output))
}

// GetPolymerEntities - List the polymer entities of one PDB entry
// @Summary Get polymer entities
// @Description List the polymer entities (protein chains) of one PDB entry
// @Tags Entry
// @Produce json
// @Param id path string true "PDB entry ID (4 characters)"
// @Success 200 {object} polymerEntitiesResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/entries/{id}/polymer-entities [get]
func (h *handler) GetPolymerEntities(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEntryIDRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetPolymerEntities: processEntryIDRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetPolymerEntities(ctx, req.toPolymerEntitiesInput())
	if err != nil {
		h.l.Errorf(ctx, "entry.delivery.http.GetPolymerEntities: usecase GetPolymerEntities failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPolymerEntitiesResp(req.EntryID, output))
}
