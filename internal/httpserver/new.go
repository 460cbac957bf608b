package httpserver

import (
	"database/sql"
	"errors"

	"pdb-srv/config"
	"pdb-srv/pkg/discord"
	pkgJWT "pdb-srv/pkg/jwt"
	"pdb-srv/pkg/log"
	"pdb-srv/pkg/rcsb"
	pkgRedis "pdb-srv/pkg/redis"
	"pdb-srv/pkg/uniprot"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Upstream clients
	rcsbClient    rcsb.IRCSB
	uniprotClient uniprot.IUniprot

	// Storage (both optional)
	redisClient pkgRedis.IRedis
	postgresDB  *sql.DB

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Upstream clients
	RCSBClient    rcsb.IRCSB
	UniprotClient uniprot.IUniprot

	// Storage (both optional)
	RedisClient pkgRedis.IRedis
	PostgresDB  *sql.DB

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Upstream clients
		rcsbClient:    cfg.RCSBClient,
		uniprotClient: cfg.UniprotClient,

		// Storage
		redisClient: cfg.RedisClient,
		postgresDB:  cfg.PostgresDB,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Upstream clients
	if srv.rcsbClient == nil {
		return errors.New("rcsbClient is required")
	}
	if srv.uniprotClient == nil {
		return errors.New("uniprotClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.config.Auth.Enabled && srv.jwtManager == nil {
		return errors.New("jwtManager is required when auth is enabled")
	}

	// Storage and discord are optional: without redis there is no caching,
	// without postgres the curated fallback is the built-in table.
	return nil
}
