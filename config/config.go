package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream APIs
	RCSB    RCSBConfig
	Uniprot UniprotConfig
	Fetch   FetchConfig

	// Redis - Response caching
	Redis RedisConfig

	// PostgreSQL - Curated binding-site knowledge
	Postgres PostgresConfig

	// Auth - Optional bearer-token protection of the REST API
	Auth AuthConfig

	// MCP - Tool server identity
	MCP MCPConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RCSBConfig is the configuration for the RCSB Data/Search APIs. Empty URLs
// fall back to the public endpoints.
type RCSBConfig struct {
	DataURL    string
	GraphQLURL string
	SearchURL  string
	Timeout    int // in seconds
}

// UniprotConfig is the configuration for the UniProtKB REST API.
type UniprotConfig struct {
	BaseURL string
	Timeout int // in seconds
}

// FetchConfig tunes the resilient fetcher.
type FetchConfig struct {
	UserAgent   string
	MaxAttempts int
	BackoffMs   int
	TimeoutMs   int
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PostgresConfig is the configuration for Postgres. An empty host disables
// the curated knowledge store (the static fallback source is used instead).
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// AuthConfig configures optional bearer-token auth on the REST API. The
// service only verifies tokens; it does not issue them.
type AuthConfig struct {
	Enabled   bool
	SecretKey string
	Issuer    string
	Audience  []string
}

// MCPConfig names the MCP tool server.
type MCPConfig struct {
	Name    string
	Version string
}

// DiscordConfig is the configuration for the alerting webhook.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("pdb-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/pdb-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upstream APIs
	cfg.RCSB.DataURL = viper.GetString("rcsb.data_url")
	cfg.RCSB.GraphQLURL = viper.GetString("rcsb.graphql_url")
	cfg.RCSB.SearchURL = viper.GetString("rcsb.search_url")
	cfg.RCSB.Timeout = viper.GetInt("rcsb.timeout")
	cfg.Uniprot.BaseURL = viper.GetString("uniprot.base_url")
	cfg.Uniprot.Timeout = viper.GetInt("uniprot.timeout")
	cfg.Fetch.UserAgent = viper.GetString("fetch.user_agent")
	cfg.Fetch.MaxAttempts = viper.GetInt("fetch.max_attempts")
	cfg.Fetch.BackoffMs = viper.GetInt("fetch.backoff_ms")
	cfg.Fetch.TimeoutMs = viper.GetInt("fetch.timeout_ms")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Auth
	cfg.Auth.Enabled = viper.GetBool("auth.enabled")
	cfg.Auth.SecretKey = viper.GetString("auth.secret_key")
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	cfg.Auth.Audience = viper.GetStringSlice("auth.audience")

	// MCP
	cfg.MCP.Name = viper.GetString("mcp.name")
	cfg.MCP.Version = viper.GetString("mcp.version")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("rcsb.timeout", 30)
	viper.SetDefault("uniprot.timeout", 30)
	viper.SetDefault("fetch.max_attempts", 3)
	viper.SetDefault("fetch.backoff_ms", 1000)
	viper.SetDefault("fetch.timeout_ms", 30000)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("auth.enabled", false)

	viper.SetDefault("mcp.name", "pdb-srv")
	viper.SetDefault("mcp.version", "1.0.0")
}
