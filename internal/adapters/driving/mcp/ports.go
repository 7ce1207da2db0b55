package mcp

import (
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Forms creates a fresh search form per tool call.
	Forms driving.FormFactory

	// Registry resolves site names and domains.
	Registry driving.SiteRegistry
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Forms == nil {
		return ErrMissingSearchForm
	}
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	return nil
}
