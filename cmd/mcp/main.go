package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"pdb-srv/config"
	configPostgre "pdb-srv/config/postgre"
	configRedis "pdb-srv/config/redis"
	annotationRepo "pdb-srv/internal/annotation/repository"
	annotationPostgre "pdb-srv/internal/annotation/repository/postgre"
	annotationStatic "pdb-srv/internal/annotation/repository/static"
	annotationUsecase "pdb-srv/internal/annotation/usecase"
	entryRepo "pdb-srv/internal/entry/repository"
	entryRedis "pdb-srv/internal/entry/repository/redis"
	entryUsecase "pdb-srv/internal/entry/usecase"
	"pdb-srv/internal/mcpserver"
	searchUsecase "pdb-srv/internal/search/usecase"
	"pdb-srv/pkg/fetch"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
	"pdb-srv/pkg/uniprot"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger. Output goes to stderr; stdout belongs to the
	// MCP transport.
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Storage (both optional). Connection failures are non-fatal here:
	// a tool server should come up even when its caches are unreachable.
	var entryCache entryRepo.CacheRepository
	if cfg.Redis.Host != "" {
		redisClient, redisErr := configRedis.Connect(ctx, cfg.Redis)
		if redisErr != nil {
			logger.Warnf(ctx, "Redis unavailable, caching disabled: %v", redisErr)
		} else {
			defer configRedis.Disconnect(redisClient)
			entryCache = entryRedis.New(redisClient, logger)
		}
	}

	var knowledgeRepo annotationRepo.KnowledgeRepository = annotationStatic.New()
	if cfg.Postgres.Host != "" {
		postgresDB, pgErr := configPostgre.Connect(ctx, cfg.Postgres)
		if pgErr != nil {
			logger.Warnf(ctx, "PostgreSQL unavailable, using built-in curated notes: %v", pgErr)
		} else {
			defer configPostgre.Disconnect(postgresDB)
			knowledgeRepo = annotationPostgre.New(postgresDB, logger)
		}
	}

	// 5. Upstream clients on the shared resilient fetcher
	fetcher := fetch.New(fetch.Config{
		UserAgent:      cfg.Fetch.UserAgent,
		MaxAttempts:    cfg.Fetch.MaxAttempts,
		BackoffBase:    time.Duration(cfg.Fetch.BackoffMs) * time.Millisecond,
		DefaultTimeout: time.Duration(cfg.Fetch.TimeoutMs) * time.Millisecond,
		FallbackURL:    cfg.RCSB.GraphQLURL,
	}, logger)

	rcsbClient := rcsb.NewRCSB(rcsb.RCSBConfig{
		DataURL:    cfg.RCSB.DataURL,
		GraphQLURL: cfg.RCSB.GraphQLURL,
		SearchURL:  cfg.RCSB.SearchURL,
		Timeout:    time.Duration(cfg.RCSB.Timeout) * time.Second,
	}, fetcher, logger)

	uniprotClient := uniprot.NewUniprot(uniprot.UniprotConfig{
		BaseURL: cfg.Uniprot.BaseURL,
		Timeout: time.Duration(cfg.Uniprot.Timeout) * time.Second,
	}, fetcher, logger)

	// 6. Use cases shared with the REST API
	entryUC := entryUsecase.New(rcsbClient, entryCache, logger)
	searchUC := searchUsecase.New(rcsbClient, logger)
	annotationUC := annotationUsecase.New(rcsbClient, uniprotClient, knowledgeRepo, logger)

	// 7. Serve MCP over stdio
	srv, err := mcpserver.New(logger, mcpserver.Config{
		Name:         cfg.MCP.Name,
		Version:      cfg.MCP.Version,
		EntryUC:      entryUC,
		SearchUC:     searchUC,
		AnnotationUC: annotationUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize MCP server: ", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run MCP server: ", err)
		return
	}
}
