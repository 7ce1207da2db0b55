package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for atsearch resources.
	uriScheme = "atsearch://"

	// SitesURI is the resource URI of the site registry.
	SitesURI = uriScheme + "sites"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         SitesURI,
		Name:        "sites",
		Description: "ATS sites that can be searched, in display order",
		MIMEType:    "application/json",
	}, s.handleSitesResource)
}

// handleSitesResource returns the site registry as JSON.
func (s *Server) handleSitesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != SitesURI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(siteOutputs(s.ports.Registry.Sites()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sites: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
