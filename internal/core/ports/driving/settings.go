package driving

import (
	"time"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetInterval updates the delay between successive tab openings.
	SetInterval(d time.Duration) error

	// SetBrowser sets the browser command. Empty restores the system default.
	SetBrowser(command string) error

	// SetPrintOnly toggles printing URLs instead of opening them.
	SetPrintOnly(enabled bool) error

	// Reset restores all settings to their defaults.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
