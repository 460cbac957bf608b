package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchRequest(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
