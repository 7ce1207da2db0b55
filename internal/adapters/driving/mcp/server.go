// Package mcp provides an MCP (Model Context Protocol) server adapter for atsearch.
//
// Assistants fill the same search form as the TUI and the search command:
//
//   - build_search_urls returns one Google search URL per selected ATS site
//   - open_search builds the URLs and opens them one interval apart
//   - list_sites returns the site registry, also served as atsearch://sites
//
// Validation failures come back in the tool output's error field, never as
// protocol errors.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/atsearch/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Instructions tells clients how to use the tools.
const Instructions = `atsearch searches applicant tracking systems (ATS) for job openings by
building Google searches restricted to each ATS job board with site:<domain>.

Call list_sites (or read atsearch://sites) to see the searchable sites. Pass
site names or domains in "sites". Leave location empty to search for Remote
roles. Use build_search_urls to get the URLs without side effects, and
open_search only when the user wants the searches opened in their browser.`

// Server is the MCP server for atsearch.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "atsearch",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: Instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server running on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("MCP server listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
