package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDispatchInterval  = "dispatch.interval_ms"
	keyDispatchBrowser   = "dispatch.browser"
	keyDispatchPrintOnly = "dispatch.print_only"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dispatch: domain.DispatchSettings{
			Interval:       s.getInterval(defaults.Dispatch.Interval),
			BrowserCommand: strings.TrimSpace(s.configStore.GetString(keyDispatchBrowser)),
			PrintOnly:      s.configStore.GetBool(keyDispatchPrintOnly),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", s.location(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyDispatchInterval, settings.Dispatch.Interval.Milliseconds()); err != nil {
		return fmt.Errorf("saving interval: %w", err)
	}
	if err := s.saveBrowser(settings.Dispatch.BrowserCommand); err != nil {
		return err
	}
	if err := s.configStore.Set(keyDispatchPrintOnly, settings.Dispatch.PrintOnly); err != nil {
		return fmt.Errorf("saving print-only: %w", err)
	}
	return nil
}

// SetInterval updates the delay between successive tab openings.
func (s *SettingsService) SetInterval(d time.Duration) error {
	ds := domain.DispatchSettings{Interval: d}
	if err := ds.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(keyDispatchInterval, d.Milliseconds())
}

// SetBrowser sets the browser command. Empty restores the system default.
func (s *SettingsService) SetBrowser(command string) error {
	ds := domain.DispatchSettings{BrowserCommand: command}
	if err := ds.Validate(); err != nil {
		return err
	}
	return s.saveBrowser(command)
}

// SetPrintOnly toggles printing URLs instead of opening them.
func (s *SettingsService) SetPrintOnly(enabled bool) error {
	return s.configStore.Set(keyDispatchPrintOnly, enabled)
}

// Reset restores all settings to their defaults.
func (s *SettingsService) Reset() error {
	for _, key := range []string{keyDispatchInterval, keyDispatchBrowser, keyDispatchPrintOnly} {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("resetting %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// saveBrowser stores the browser command, removing the key when empty.
func (s *SettingsService) saveBrowser(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return s.configStore.Delete(keyDispatchBrowser)
	}
	if err := s.configStore.Set(keyDispatchBrowser, command); err != nil {
		return fmt.Errorf("saving browser: %w", err)
	}
	return nil
}

// getInterval reads the interval in milliseconds, falling back when unset.
func (s *SettingsService) getInterval(fallback time.Duration) time.Duration {
	if _, ok := s.configStore.Get(keyDispatchInterval); !ok {
		return fallback
	}
	return time.Duration(s.configStore.GetInt(keyDispatchInterval)) * time.Millisecond
}

// location names the config backing for error messages.
func (s *SettingsService) location() string {
	if p := s.configStore.Path(); p != "" {
		return p
	}
	return "config"
}
