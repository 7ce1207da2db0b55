// Package settings provides the dispatch settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// ErrNoSettingsService is returned when the view has no settings service.
var ErrNoSettingsService = errors.New("settings service not available")

// Item identifies a row in the settings list.
type Item int

const (
	ItemInterval Item = iota
	ItemBrowser
	ItemPrintOnly
	ItemReset
	itemCount
)

// String returns the string representation.
func (i Item) String() string {
	switch i {
	case ItemInterval:
		return "interval"
	case ItemBrowser:
		return "browser"
	case ItemPrintOnly:
		return "print_only"
	case ItemReset:
		return "reset"
	default:
		return "unknown"
	}
}

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error

	// Navigation state
	selected Item
	editing  bool

	// input edits the interval or browser command.
	input *input.Field

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		settingsService: settingsService,
		input:           input.NewField(s, "New value", ""),
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.stopEditing()
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		v.err = nil
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewForm}
		}
	case keymap.Matches(msg, v.keymap.Up), keymap.Matches(msg, v.keymap.PrevField):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(msg, v.keymap.Down), keymap.Matches(msg, v.keymap.NextField):
		if v.selected < itemCount-1 {
			v.selected++
		}
	case keymap.Matches(msg, v.keymap.Submit), keymap.Matches(msg, v.keymap.Toggle):
		return v, v.activate()
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.err = nil
		v.stopEditing()
		return v, nil
	case tea.KeyEnter:
		return v, v.saveInput()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// activate edits, toggles or resets the selected item.
func (v *View) activate() tea.Cmd {
	if v.settings == nil {
		return nil
	}

	switch v.selected {
	case ItemInterval:
		return v.startEditing(strconv.FormatInt(v.settings.Dispatch.Interval.Milliseconds(), 10))
	case ItemBrowser:
		return v.startEditing(v.settings.Dispatch.BrowserCommand)
	case ItemPrintOnly:
		enabled := !v.settings.Dispatch.PrintOnly
		return v.save(func(s driving.SettingsService) error {
			return s.SetPrintOnly(enabled)
		})
	case ItemReset:
		return v.save(func(s driving.SettingsService) error {
			return s.Reset()
		})
	}
	return nil
}

// saveInput validates the edited value and stores it.
func (v *View) saveInput() tea.Cmd {
	value := strings.TrimSpace(v.input.Value())

	switch v.selected {
	case ItemInterval:
		ms, err := strconv.Atoi(value)
		if err != nil {
			v.err = fmt.Errorf("invalid interval %q: must be a whole number of milliseconds", value)
			return nil
		}
		interval := time.Duration(ms) * time.Millisecond
		return v.save(func(s driving.SettingsService) error {
			return s.SetInterval(interval)
		})
	case ItemBrowser:
		return v.save(func(s driving.SettingsService) error {
			return s.SetBrowser(value)
		})
	}
	return nil
}

// save runs fn against the settings service and reports the outcome.
func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: fn(service)}
	}
}

func (v *View) startEditing(value string) tea.Cmd {
	v.editing = true
	v.err = nil
	v.input.SetValue(value)
	return v.input.Focus()
}

func (v *View) stopEditing() {
	v.editing = false
	v.input.Blur()
	v.input.Reset()
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	for i := Item(0); i < itemCount; i++ {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := indicator + v.renderItem(i)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")

		if v.editing && i == v.selected {
			b.WriteString("    ")
			b.WriteString(v.input.View())
			b.WriteString("\n")
		}
	}

	if v.selected == ItemPrintOnly {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("Print only takes effect the next time atsearch starts."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderItem(i Item) string {
	d := v.settings.Dispatch
	switch i {
	case ItemInterval:
		return fmt.Sprintf("Interval: %s", d.Interval)
	case ItemBrowser:
		if d.UsesSystemBrowser() {
			return "Browser: system default"
		}
		return fmt.Sprintf("Browser: %s", d.BrowserCommand)
	case ItemPrintOnly:
		state := "off"
		if d.PrintOnly {
			state = "on"
		}
		return fmt.Sprintf("Print only: %s", state)
	case ItemReset:
		return "Restore defaults"
	default:
		return ""
	}
}

func (v *View) renderHelp() string {
	if v.editing {
		if v.selected == ItemInterval {
			return v.styles.Help.Render("milliseconds, 0 to 10000  [enter] save  [esc] cancel")
		}
		return v.styles.Help.Render("empty for system default  [enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Selected returns the item under the cursor.
func (v *View) Selected() Item {
	return v.selected
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error shown by the view.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to its initial state.
func (v *View) Reset() {
	v.selected = ItemInterval
	v.err = nil
	v.stopEditing()
}
