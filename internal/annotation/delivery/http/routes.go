package http

import (
	"pdb-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/entries/:id/binding-sites", h.GetBindingSites)
		api.GET("/uniprot/:accession/comments", h.GetUniprotComments)
	}
}
