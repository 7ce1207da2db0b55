package driven

import "github.com/custodia-labs/atsearch/internal/core/domain"

// SiteSource supplies the ordered list of known ATS sites.
// It is read once at startup; the list is fixed for the process lifetime.
type SiteSource interface {
	// Load returns the sites in display order.
	Load() ([]domain.Site, error)
}
