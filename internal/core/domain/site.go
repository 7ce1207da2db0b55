package domain

import (
	"fmt"
	"strings"
)

// Site is an ATS platform that can be targeted by a scoped search.
// Domain is the unique key: it keys the selection map and is the
// value used in the query's site: filter.
type Site struct {
	// Name is the human-readable platform label.
	Name string `json:"name" toml:"name"`

	// Domain is the web domain searched with site:.
	Domain string `json:"domain" toml:"domain"`
}

// Validate checks that the site has a name and a usable domain.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: site name is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(s.Domain) == "" {
		return fmt.Errorf("%w: domain for %q is empty", ErrInvalidInput, s.Name)
	}
	if strings.ContainsAny(s.Domain, " \t\n/") {
		return fmt.Errorf("%w: domain %q must be a bare host", ErrInvalidInput, s.Domain)
	}
	return nil
}

// ValidateSites checks every site and enforces domain uniqueness.
func ValidateSites(sites []Site) error {
	if len(sites) == 0 {
		return ErrEmptyRegistry
	}
	seen := make(map[string]string, len(sites))
	for _, s := range sites {
		if err := s.Validate(); err != nil {
			return err
		}
		if prev, ok := seen[s.Domain]; ok {
			return fmt.Errorf("%w: %s (%s and %s)", ErrDuplicateDomain, s.Domain, prev, s.Name)
		}
		seen[s.Domain] = s.Name
	}
	return nil
}
