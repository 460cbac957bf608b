package http

import (
	"pdb-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/entries/:id", h.GetDetails)
		api.GET("/entries/:id/ligands", h.GetLigands)
		api.GET("/entries/:id/polymer-entities", h.GetPolymerEntities)
	}
}
