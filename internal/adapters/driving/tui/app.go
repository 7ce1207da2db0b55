package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/atsearch/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to form submissions.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// formView is the search form.
	formView *form.View

	// settingsView edits dispatch settings. Nil without a settings port.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km, ports.Forms.NewForm()),
		currentView: messages.ViewForm,
	}
	if ports.Settings != nil {
		app.settingsView = settings.NewView(s, km, ports.Settings)
	}
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.formView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("atsearch - ATS Job Search"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.formView.SetDimensions(msg.Width, msg.Height)
		if a.settingsView != nil {
			a.settingsView.SetDimensions(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			// Any of esc, ? or q returns to the form
			if msg.Type == tea.KeyEsc || keymap.Matches(msg, a.keymap.Help) || msg.String() == "q" {
				a.currentView = messages.ViewForm
			}
			return a, nil
		}
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		return a, a.changeView(msg.View)

	case messages.SettingsLoaded:
		if a.settingsView != nil {
			a.settingsView, cmd = a.settingsView.Update(msg)
		}
		return a, cmd

	case messages.SettingsSaved:
		if a.settingsView == nil {
			return a, nil
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err == nil && a.ports.Reload != nil {
			reload := a.ports.Reload
			cmd = tea.Batch(cmd, func() tea.Msg { return reload() })
		}
		return a, cmd

	case messages.SettingsReloaded:
		if msg.Err != nil {
			logger.Warn("Settings reload failed: %v", msg.Err)
		}
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Dispatch progress goes to the form even while another view is
	// showing, so a running dispatch keeps being consumed.
	if a.currentView == messages.ViewSettings {
		var settingsCmd tea.Cmd
		a.settingsView, settingsCmd = a.settingsView.Update(msg)
		a.formView, cmd = a.formView.Update(msg)
		return a, tea.Batch(cmd, settingsCmd)
	}
	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

// changeView switches the active view. The settings view reloads on entry.
func (a *App) changeView(view messages.ViewType) tea.Cmd {
	if view == messages.ViewSettings {
		if a.settingsView == nil {
			return nil
		}
		a.settingsView.Reset()
		a.currentView = view
		return a.settingsView.Init()
	}
	a.currentView = view
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewForm:
		return a.formView.View()
	default:
		return a.formView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	groups := make([]string, 0, len(a.keymap.FullHelp()))
	for _, group := range a.keymap.FullHelp() {
		lines := make([]string, 0, len(group))
		for _, binding := range group {
			h := binding.Help()
			lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
		}
		groups = append(groups, strings.Join(lines, "\n"))
	}
	b.WriteString(a.styles.Border.Padding(0, 1).Render(strings.Join(groups, "\n\n")))
	b.WriteString("\n\n")

	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			b.WriteString(a.styles.Subtitle.Render("Dispatch"))
			b.WriteString("\n")
			fmt.Fprintf(&b, "  %-12s %s\n", "interval", settings.Dispatch.Interval)
			browser := settings.Dispatch.BrowserCommand
			if settings.Dispatch.UsesSystemBrowser() {
				browser = "system default"
			}
			fmt.Fprintf(&b, "  %-12s %s\n\n", "browser", browser)
		}
	}

	b.WriteString(a.styles.Help.Render("[esc] back to form"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Form returns the form view.
func (a *App) Form() *form.View {
	return a.formView
}

// Settings returns the settings view, or nil without a settings port.
func (a *App) Settings() *settings.View {
	return a.settingsView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.formView.SetDimensions(width, height)
}
