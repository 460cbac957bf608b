package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	annotationHTTP "pdb-srv/internal/annotation/delivery/http"
	"pdb-srv/internal/annotation/repository"
	annotationPostgre "pdb-srv/internal/annotation/repository/postgre"
	annotationStatic "pdb-srv/internal/annotation/repository/static"
	annotationUsecase "pdb-srv/internal/annotation/usecase"
	"pdb-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnnotationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	// Curated active-site notes come from Postgres when configured; the
	// built-in table keeps the feature alive without a database.
	var knowledgeRepo repository.KnowledgeRepository
	if srv.postgresDB != nil {
		knowledgeRepo = annotationPostgre.New(srv.postgresDB, srv.l)
	} else {
		knowledgeRepo = annotationStatic.New()
	}

	uc := annotationUsecase.New(srv.rcsbClient, srv.uniprotClient, knowledgeRepo, srv.l)

	handler := annotationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Annotation domain registered")
	return nil
}
