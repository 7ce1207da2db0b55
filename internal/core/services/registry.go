package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// Ensure SiteRegistry implements the interface.
var _ driving.SiteRegistry = (*SiteRegistry)(nil)

// SiteRegistry is the immutable, ordered list of known ATS sites.
type SiteRegistry struct {
	sites    []domain.Site
	byDomain map[string]int
}

// NewSiteRegistry validates sites and builds a registry from a copy of them.
func NewSiteRegistry(sites []domain.Site) (*SiteRegistry, error) {
	if err := domain.ValidateSites(sites); err != nil {
		return nil, fmt.Errorf("building site registry: %w", err)
	}

	r := &SiteRegistry{
		sites:    make([]domain.Site, len(sites)),
		byDomain: make(map[string]int, len(sites)),
	}
	copy(r.sites, sites)
	for i, s := range r.sites {
		r.byDomain[s.Domain] = i
	}
	return r, nil
}

// LoadSiteRegistry reads sites from src and builds a registry.
func LoadSiteRegistry(src driven.SiteSource) (*SiteRegistry, error) {
	sites, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("loading sites: %w", err)
	}
	return NewSiteRegistry(sites)
}

// Sites returns all sites in registry order.
func (r *SiteRegistry) Sites() []domain.Site {
	out := make([]domain.Site, len(r.sites))
	copy(out, r.sites)
	return out
}

// Lookup returns the site with the given domain.
func (r *SiteRegistry) Lookup(d string) (domain.Site, error) {
	i, ok := r.byDomain[d]
	if !ok {
		return domain.Site{}, fmt.Errorf("site %q: %w", d, domain.ErrNotFound)
	}
	return r.sites[i], nil
}

// Resolve maps domains or names to sites in registry order.
// Matching is case-insensitive; repeated keys are collapsed.
func (r *SiteRegistry) Resolve(keys []string) ([]domain.Site, error) {
	matched := make(map[int]bool, len(keys))
	var unknown []string

	for _, key := range keys {
		k := strings.ToLower(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		idx := r.match(k)
		if idx < 0 {
			unknown = append(unknown, key)
			continue
		}
		matched[idx] = true
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown site(s) %s: %w", strings.Join(unknown, ", "), domain.ErrNotFound)
	}

	out := make([]domain.Site, 0, len(matched))
	for i, s := range r.sites {
		if matched[i] {
			out = append(out, s)
		}
	}
	return out, nil
}

// match returns the index of the site whose domain or name equals k, or -1.
func (r *SiteRegistry) match(k string) int {
	for i, s := range r.sites {
		if strings.ToLower(s.Domain) == k || strings.ToLower(s.Name) == k {
			return i
		}
	}
	return -1
}
