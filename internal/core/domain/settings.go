package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDispatchInterval separates successive tab openings so browsers
	// do not treat a submission as one popup burst.
	DefaultDispatchInterval = 300 * time.Millisecond

	// MaxDispatchInterval bounds the configurable interval.
	MaxDispatchInterval = 10 * time.Second
)

// DispatchSettings controls how search URLs are opened.
type DispatchSettings struct {
	// Interval is the delay between successive opens.
	Interval time.Duration

	// BrowserCommand overrides the system browser. The URL is appended
	// as the final argument. Empty uses the system default.
	BrowserCommand string

	// PrintOnly writes URLs to stdout instead of opening them.
	PrintOnly bool
}

// Validate checks the dispatch settings are within bounds.
func (d DispatchSettings) Validate() error {
	if d.Interval < 0 || d.Interval > MaxDispatchInterval {
		return fmt.Errorf("%w: interval must be between 0 and %s", ErrInvalidInput, MaxDispatchInterval)
	}
	if d.BrowserCommand != "" && strings.TrimSpace(d.BrowserCommand) == "" {
		return fmt.Errorf("%w: browser command is blank", ErrInvalidInput)
	}
	return nil
}

// UsesSystemBrowser returns true if no browser command override is set.
func (d DispatchSettings) UsesSystemBrowser() bool {
	return d.BrowserCommand == ""
}

// AppSettings holds all user-configurable application settings.
type AppSettings struct {
	Dispatch DispatchSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Dispatch: DispatchSettings{
			Interval: DefaultDispatchInterval,
		},
	}
}

// Validate checks all settings.
func (s *AppSettings) Validate() error {
	return s.Dispatch.Validate()
}
