package http

import (
	"pdb-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processBindingSitesRequest(c *gin.Context) (bindingSitesReq, error) {
	id := util.NormalizePDBID(c.Param("id"))
	if err := util.IsPDBID(id); err != nil {
		return bindingSitesReq{}, errInvalidEntryID
	}
	return bindingSitesReq{EntryID: id}, nil
}

func (h *handler) processUniprotCommentsRequest(c *gin.Context) (uniprotCommentsReq, error) {
	accession := util.NormalizeAccession(c.Param("accession"))
	if err := util.IsAccession(accession); err != nil {
		return uniprotCommentsReq{}, errInvalidAccession
	}
	return uniprotCommentsReq{Accession: accession}, nil
}
