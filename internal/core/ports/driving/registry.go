package driving

import "github.com/custodia-labs/atsearch/internal/core/domain"

// SiteRegistry exposes the fixed, ordered list of ATS sites.
type SiteRegistry interface {
	// Sites returns all sites in registry order.
	Sites() []domain.Site

	// Lookup returns the site with the given domain.
	Lookup(domain string) (domain.Site, error)

	// Resolve maps domains or site names (case-insensitive) to sites,
	// returned in registry order without duplicates.
	Resolve(keys []string) ([]domain.Site, error)
}
