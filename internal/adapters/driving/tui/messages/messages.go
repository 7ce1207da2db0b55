// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the search form.
	ViewForm ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the dispatch settings view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// DispatchProgress reports one opened (or failed) search URL.
// Failed counts failures before this result. Results is the channel the
// next result will arrive on.
type DispatchProgress struct {
	Result  domain.DispatchResult
	Failed  int
	Results <-chan domain.DispatchResult
}

// DispatchFinished signals the last URL of a submission was handled.
type DispatchFinished struct {
	SubmissionID string
	Total        int
	Failed       int
}

// SettingsLoaded is sent when settings have been read for the settings view.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved is sent after the settings view wrote a change.
type SettingsSaved struct {
	Err error
}

// SettingsReloaded carries settings re-read and applied to the dispatcher,
// after the config file changed or the settings view saved.
type SettingsReloaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
