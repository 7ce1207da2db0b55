// Package checklist provides the site selection grid for the TUI.
package checklist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// wideThreshold is the width from which the grid uses three columns.
const wideThreshold = 96

// Checklist displays sites as a grid of checkboxes laid out row by row.
// It only renders selection state; toggling goes through the form.
type Checklist struct {
	sites   []domain.Site
	checked map[string]bool
	cursor  int
	focused bool
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	width   int
}

// New creates a checklist over sites in the given order.
func New(s *styles.Styles, km *keymap.KeyMap, sites []domain.Site) *Checklist {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Checklist{
		sites:   sites,
		checked: make(map[string]bool, len(sites)),
		styles:  s,
		keymap:  km,
		width:   80,
	}
}

// Init initialises the checklist.
func (c *Checklist) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Toggling is left to the owner.
func (c *Checklist) Update(msg tea.Msg) (*Checklist, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch {
	case keymap.Matches(keyMsg, c.keymap.Up):
		c.MoveUp()
	case keymap.Matches(keyMsg, c.keymap.Down):
		c.MoveDown()
	case keymap.Matches(keyMsg, c.keymap.Left):
		c.MoveLeft()
	case keymap.Matches(keyMsg, c.keymap.Right):
		c.MoveRight()
	}
	return c, nil
}

// View renders the grid.
func (c *Checklist) View() string {
	if len(c.sites) == 0 {
		return c.styles.Muted.Render("No sites")
	}

	cols := c.Columns()
	cellWidth := c.width / cols
	if cellWidth < 16 {
		cellWidth = 16
	}

	rows := make([]string, 0, len(c.sites)/cols+1)
	for start := 0; start < len(c.sites); start += cols {
		end := start + cols
		if end > len(c.sites) {
			end = len(c.sites)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth).Render(c.renderCell(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (c *Checklist) renderCell(i int) string {
	site := c.sites[i]
	box := "[ ]"
	if c.checked[site.Domain] {
		box = "[x]"
	}
	text := box + " " + site.Name

	switch {
	case c.focused && i == c.cursor:
		return c.styles.Selected.Render(text)
	case c.checked[site.Domain]:
		return c.styles.Checked.Render(text)
	default:
		return c.styles.Normal.Render(text)
	}
}

// Columns returns the number of grid columns for the current width.
func (c *Checklist) Columns() int {
	if c.width >= wideThreshold {
		return 3
	}
	return 2
}

// MoveUp moves the cursor one row up.
func (c *Checklist) MoveUp() {
	if c.cursor-c.Columns() >= 0 {
		c.cursor -= c.Columns()
	}
}

// MoveDown moves the cursor one row down.
func (c *Checklist) MoveDown() {
	if c.cursor+c.Columns() < len(c.sites) {
		c.cursor += c.Columns()
	}
}

// MoveLeft moves the cursor one column left within its row.
func (c *Checklist) MoveLeft() {
	if c.cursor%c.Columns() > 0 {
		c.cursor--
	}
}

// MoveRight moves the cursor one column right within its row.
func (c *Checklist) MoveRight() {
	if c.cursor%c.Columns() < c.Columns()-1 && c.cursor+1 < len(c.sites) {
		c.cursor++
	}
}

// Cursor returns the cursor index.
func (c *Checklist) Cursor() int {
	return c.cursor
}

// Current returns the site under the cursor.
func (c *Checklist) Current() (domain.Site, bool) {
	if c.cursor < 0 || c.cursor >= len(c.sites) {
		return domain.Site{}, false
	}
	return c.sites[c.cursor], true
}

// SetChecked replaces the rendered selection state.
func (c *Checklist) SetChecked(selection domain.Selection) {
	c.checked = make(map[string]bool, len(selection))
	for k, v := range selection {
		c.checked[k] = v
	}
}

// Checked returns true if the site with the given domain is ticked.
func (c *Checklist) Checked(d string) bool {
	return c.checked[d]
}

// Focus highlights the cursor.
func (c *Checklist) Focus() {
	c.focused = true
}

// Blur hides the cursor highlight.
func (c *Checklist) Blur() {
	c.focused = false
}

// Focused returns whether the grid has focus.
func (c *Checklist) Focused() bool {
	return c.focused
}

// SetWidth sets the grid width.
func (c *Checklist) SetWidth(width int) {
	c.width = width
}

// Width returns the current width.
func (c *Checklist) Width() int {
	return c.width
}

// Len returns the number of sites.
func (c *Checklist) Len() int {
	return len(c.sites)
}
