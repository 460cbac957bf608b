package http

import (
	"pdb-srv/pkg/util"

	"github.com/gin-gonic/gin"
)

func (h *handler) processEntryIDRequest(c *gin.Context) (entryIDReq, error) {
	id := util.NormalizePDBID(c.Param("id"))
	if err := util.IsPDBID(id); err != nil {
		return entryIDReq{}, errInvalidEntryID
	}
	return entryIDReq{EntryID: id}, nil
}
