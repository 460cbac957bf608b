package mcpserver

import (
	"errors"

	"pdb-srv/internal/annotation"
	"pdb-srv/internal/entry"
	"pdb-srv/internal/search"
	"pdb-srv/pkg/log"

	"github.com/mark3labs/mcp-go/server"
)

// MCPServer exposes the lookup use cases as MCP tools over stdio.
type MCPServer struct {
	l   log.Logger
	mcp *server.MCPServer

	entryUC      entry.UseCase
	searchUC     search.UseCase
	annotationUC annotation.UseCase
}

type Config struct {
	Name    string
	Version string

	EntryUC      entry.UseCase
	SearchUC     search.UseCase
	AnnotationUC annotation.UseCase
}

// New creates a new MCPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*MCPServer, error) {
	srv := &MCPServer{
		l: logger,
		mcp: server.NewMCPServer(
			cfg.Name,
			cfg.Version,
			server.WithRecovery(),
			server.WithToolCapabilities(false),
		),
		entryUC:      cfg.EntryUC,
		searchUC:     cfg.SearchUC,
		annotationUC: cfg.AnnotationUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.registerTools()
	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *MCPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.entryUC == nil {
		return errors.New("entryUC is required")
	}
	if srv.searchUC == nil {
		return errors.New("searchUC is required")
	}
	if srv.annotationUC == nil {
		return errors.New("annotationUC is required")
	}
	return nil
}
