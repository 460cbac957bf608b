package mcpserver

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// Run serves the MCP protocol on stdin/stdout until the context is
// cancelled or the client closes the stream. All logging goes to stderr so
// the transport owns stdout.
func (srv *MCPServer) Run(ctx context.Context) error {
	srv.l.Infof(ctx, "MCP server listening on stdio")

	stdio := server.NewStdioServer(srv.mcp)
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		srv.l.Errorf(ctx, "MCP server stopped with error: %v", err)
		return err
	}
	srv.l.Info(ctx, "MCP server stopped.")
	return nil
}
