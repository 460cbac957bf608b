package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pdb-srv/internal/middleware"
	searchHTTP "pdb-srv/internal/search/delivery/http"
	searchUsecase "pdb-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := searchUsecase.New(srv.rcsbClient, srv.l)

	handler := searchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
