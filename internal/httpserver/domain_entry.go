package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	entryHTTP "pdb-srv/internal/entry/delivery/http"
	"pdb-srv/internal/entry/repository"
	entryRedis "pdb-srv/internal/entry/repository/redis"
	entryUsecase "pdb-srv/internal/entry/usecase"
	"pdb-srv/internal/middleware"
)

func (srv *HTTPServer) setupEntryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = entryRedis.New(srv.redisClient, srv.l)
	}

	uc := entryUsecase.New(srv.rcsbClient, cacheRepo, srv.l)

	handler := entryHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Entry domain registered")
	return nil
}
