package main

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"pdb-srv/config"
	configPostgre "pdb-srv/config/postgre"
	configRedis "pdb-srv/config/redis"
	"pdb-srv/internal/httpserver"
	"pdb-srv/pkg/discord"
	"pdb-srv/pkg/fetch"
	pkgJWT "pdb-srv/pkg/jwt"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
	pkgRedis "pdb-srv/pkg/redis"
	"pdb-srv/pkg/uniprot"
)

// @title       PDB Structure Service API
// @description REST API for Protein Data Bank structure lookups: search, entry details, ligands, binding sites and UniProt annotations.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Optional Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Initialize PostgreSQL (optional; curated notes fall back to the
	// built-in table without it)
	postgresDB, err := connectPostgres(ctx, logger, cfg)
	if err != nil {
		return
	}
	if postgresDB != nil {
		defer configPostgre.Disconnect(postgresDB)
	}

	// 5. Initialize Redis (optional; disables response caching when absent)
	redisClient, err := connectRedis(ctx, logger, cfg)
	if err != nil {
		return
	}
	if redisClient != nil {
		defer configRedis.Disconnect(redisClient)
	}

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize JWT Manager (only when auth is enabled)
	var jwtManager pkgJWT.IManager
	if cfg.Auth.Enabled {
		jwtManager, err = pkgJWT.New(pkgJWT.Config{
			SecretKey: cfg.Auth.SecretKey,
			Issuer:    cfg.Auth.Issuer,
			Audience:  cfg.Auth.Audience,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize JWT manager: ", err)
			return
		}
		logger.Infof(ctx, "JWT Manager initialized")
	}

	// 8. Initialize upstream clients on the shared resilient fetcher
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

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Upstream clients
		RCSBClient:    rcsbClient,
		UniprotClient: uniprotClient,

		// Storage
		RedisClient: redisClient,
		PostgresDB:  postgresDB,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// connectPostgres connects when a host is configured. A configured host
// that cannot be reached is fatal; no host at all is not.
func connectPostgres(ctx context.Context, logger log.Logger, cfg *config.Config) (*sql.DB, error) {
	if cfg.Postgres.Host == "" {
		logger.Info(ctx, "PostgreSQL not configured, using built-in curated notes")
		return nil, nil
	}
	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return nil, err
	}
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	return db, nil
}

// connectRedis connects when a host is configured; without it the service
// runs uncached.
func connectRedis(ctx context.Context, logger log.Logger, cfg *config.Config) (pkgRedis.IRedis, error) {
	if cfg.Redis.Host == "" {
		logger.Info(ctx, "Redis not configured, response caching disabled")
		return nil, nil
	}
	client, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return nil, err
	}
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	return client, nil
}
