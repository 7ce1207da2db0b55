// Package tui provides an interactive terminal user interface for atsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Forms creates the search form the TUI edits.
	Forms driving.FormFactory

	// Settings backs the settings view and the help view. Optional.
	Settings driving.SettingsService

	// Reload applies saved settings to the running dispatcher. Optional.
	Reload func() messages.SettingsReloaded
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(forms driving.FormFactory, settings driving.SettingsService) *Ports {
	return &Ports{
		Forms:    forms,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Forms == nil {
		return ErrMissingSearchForm
	}
	return nil
}
