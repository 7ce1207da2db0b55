// Package sites provides the built-in ATS site registry.
//
// The registry is compiled into the binary from sites.toml and cannot be
// changed at runtime.
package sites

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.SiteSource = (*Source)(nil)

//go:embed sites.toml
var builtin []byte

// registryFile is the TOML layout of a registry file.
type registryFile struct {
	Sites []domain.Site `toml:"site"`
}

// Source decodes a TOML site registry.
type Source struct {
	data []byte
}

// NewSource returns the built-in registry.
func NewSource() *Source {
	return &Source{data: builtin}
}

// NewSourceFromBytes returns a source over an arbitrary TOML document.
func NewSourceFromBytes(data []byte) *Source {
	return &Source{data: data}
}

// Load decodes and validates the registry, preserving file order.
func (s *Source) Load() ([]domain.Site, error) {
	var f registryFile
	if err := toml.Unmarshal(s.data, &f); err != nil {
		return nil, fmt.Errorf("decoding site registry: %w", err)
	}
	if err := domain.ValidateSites(f.Sites); err != nil {
		return nil, err
	}
	return f.Sites, nil
}
