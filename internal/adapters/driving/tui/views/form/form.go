// Package form provides the search form view for the TUI.
package form

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/components/checklist"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// SubmitLabel is the text of the submit button.
const SubmitLabel = "[ Search Jobs ]"

// Field identifies a focusable part of the form.
type Field int

const (
	FieldJobTitle Field = iota
	FieldLocation
	FieldSites
	FieldSubmit

	fieldCount
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldJobTitle:
		return "job_title"
	case FieldLocation:
		return "location"
	case FieldSites:
		return "sites"
	case FieldSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// View is the search form: two text fields, the site grid, the submit
// button, the validation error line and the status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	form      driving.SearchForm
	jobTitle  *input.Field
	location  *input.Field
	sites     *checklist.Checklist
	statusbar *status.Bar
	ctx       context.Context

	focus  Field
	width  int
	height int
	ready  bool
}

// NewView creates a new form view over a search form.
func NewView(s *styles.Styles, km *keymap.KeyMap, form driving.SearchForm) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	var sites []domain.Site
	if form != nil {
		sites = form.Sites()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		form:      form,
		jobTitle:  input.NewField(s, "Job Title", "e.g. Frontend Developer"),
		location:  input.NewField(s, "Location", domain.DefaultLocation),
		sites:     checklist.New(s, km, sites),
		statusbar: status.NewBar(s, km),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	v.syncFromForm()
	v.setFocus(FieldJobTitle)
	return v
}

// WithContext sets the context passed to Submit.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.jobTitle.Init()
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DispatchProgress:
		return v, v.handleProgress(msg)

	case messages.DispatchFinished:
		v.handleFinished(msg)
		return v, nil

	case messages.SettingsReloaded:
		if msg.Err != nil {
			v.statusbar.Warn("settings not reloaded: " + msg.Err.Error())
		} else {
			v.statusbar.Clear()
			v.statusbar.SetMessage("Settings reloaded")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.Warn(msg.Err.Error())
		return v, nil
	}

	// Forward blink and other ticks to the focused input
	return v.updateFocusedInput(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(msg, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % fieldCount)
	case keymap.Matches(msg, v.keymap.PrevField):
		return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)
	case keymap.Matches(msg, v.keymap.Submit):
		return v, v.submit()
	}

	if v.typing() {
		return v.updateFocusedInput(msg)
	}

	switch {
	case keymap.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(msg, v.keymap.Settings):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewSettings} }
	case keymap.Matches(msg, v.keymap.ToggleAll):
		v.toggleAll()
		return v, nil
	case keymap.Matches(msg, v.keymap.Toggle):
		if v.focus == FieldSubmit {
			return v, v.submit()
		}
		if site, ok := v.sites.Current(); ok {
			v.form.ToggleSite(site.Domain)
			v.syncFromForm()
		}
		return v, nil
	}

	if v.focus == FieldSites {
		v.sites, _ = v.sites.Update(msg)
	}
	return v, nil
}

// updateFocusedInput forwards msg to the focused text field and copies its
// value into the form.
func (v *View) updateFocusedInput(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	switch v.focus {
	case FieldJobTitle:
		v.jobTitle, cmd = v.jobTitle.Update(msg)
		if v.form != nil {
			v.form.SetJobTitle(v.jobTitle.Value())
		}
	case FieldLocation:
		v.location, cmd = v.location.Update(msg)
		if v.form != nil {
			v.form.SetLocation(v.location.Value())
		}
	case FieldSites, FieldSubmit, fieldCount:
	}
	return v, cmd
}

// typing returns true if a text field has focus.
func (v *View) typing() bool {
	return v.focus == FieldJobTitle || v.focus == FieldLocation
}

// setFocus moves focus to f and returns the cursor blink command.
func (v *View) setFocus(f Field) tea.Cmd {
	v.focus = f
	v.jobTitle.Blur()
	v.location.Blur()
	v.sites.Blur()

	switch f {
	case FieldJobTitle:
		return v.jobTitle.Focus()
	case FieldLocation:
		return v.location.Focus()
	case FieldSites:
		v.sites.Focus()
	case FieldSubmit, fieldCount:
	}
	return nil
}

// toggleAll selects every site, or clears them all if all are selected.
func (v *View) toggleAll() {
	if v.form == nil {
		return
	}
	state := v.form.State()
	target := state.Selection.Count() < len(state.Selection)
	for _, site := range v.form.Sites() {
		if state.Selection[site.Domain] != target {
			v.form.ToggleSite(site.Domain)
		}
	}
	v.syncFromForm()
}

// submit runs the form's Submit and starts listening for dispatch results.
func (v *View) submit() tea.Cmd {
	if v.form == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoSearchForm} }
	}

	sub := v.form.Submit(v.ctx)
	if !sub.Accepted() {
		v.statusbar.Clear()
		return nil
	}

	v.statusbar.StartDispatch(len(sub.URLs))
	if sub.Results == nil {
		return func() tea.Msg {
			return messages.DispatchFinished{SubmissionID: sub.ID, Total: len(sub.URLs)}
		}
	}
	return waitForResult(sub.ID, len(sub.URLs), 0, sub.Results)
}

// handleProgress updates the status bar and waits for the next result.
func (v *View) handleProgress(msg messages.DispatchProgress) tea.Cmd {
	res := msg.Result
	failed := msg.Failed
	if res.Err != nil {
		failed++
		v.statusbar.Warn(fmt.Sprintf("could not open search %d/%d: %v", res.Index+1, res.Total, res.Err))
	}
	v.statusbar.Progress(res.Index+1, res.Total)
	return waitForResult(res.SubmissionID, res.Total, failed, msg.Results)
}

func (v *View) handleFinished(msg messages.DispatchFinished) {
	if msg.Failed > 0 {
		v.statusbar.Warn(fmt.Sprintf("opened %d of %d searches", msg.Total-msg.Failed, msg.Total))
		return
	}
	v.statusbar.Finish(msg.Total)
}

// waitForResult returns a command that blocks for the next dispatch result.
// failed counts the failures seen so far for this submission.
func waitForResult(id string, total, failed int, results <-chan domain.DispatchResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return messages.DispatchFinished{SubmissionID: id, Total: total, Failed: failed}
		}
		return messages.DispatchProgress{Result: res, Failed: failed, Results: results}
	}
}

// syncFromForm refreshes the grid from the form's selection.
func (v *View) syncFromForm() {
	if v.form == nil {
		return
	}
	v.sites.SetChecked(v.form.State().Selection)
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 14)

	sections = append(sections,
		v.styles.Title.Render("ATS Job Search"),
		v.styles.Muted.Render("Search applicant tracking systems for open roles"),
		"",
		v.jobTitle.View(),
		v.location.View(),
		"",
	)

	sitesTitle := v.styles.Subtitle
	if v.focus == FieldSites {
		sitesTitle = v.styles.FocusedLabel
	}
	sections = append(sections, sitesTitle.Render("Sites"), v.sites.View(), "")

	button := v.styles.Button
	if v.focus == FieldSubmit {
		button = v.styles.FocusedButton
	}
	sections = append(sections, button.Render(SubmitLabel))

	if msg := v.ErrorMessage(); msg != "" {
		sections = append(sections, "", v.styles.Error.Render(msg))
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.jobTitle.SetWidth(width)
	v.location.SetWidth(width)
	v.sites.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Focus returns the focused field.
func (v *View) Focus() Field {
	return v.focus
}

// ErrorMessage returns the form's validation message.
func (v *View) ErrorMessage() string {
	if v.form == nil {
		return ""
	}
	return v.form.ErrorMessage()
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Sites returns the site grid.
func (v *View) Sites() *checklist.Checklist {
	return v.sites
}
