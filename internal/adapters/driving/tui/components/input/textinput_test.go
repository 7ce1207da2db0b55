package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	f := NewField(styles.DefaultStyles(), "Location", "Remote")

	require.NotNil(t, f)
	assert.Equal(t, "", f.Value())
	assert.Equal(t, "Location", f.Label())
	assert.Equal(t, "Remote", f.Placeholder())
	assert.False(t, f.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
}

func TestField_Init(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	assert.NotNil(t, f.Init())
}

func TestField_Update_WhenFocused(t *testing.T) {
	f := NewField(nil, "Job Title", "")
	f.Focus()

	updated, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Go")})

	assert.Same(t, f, updated)
	assert.Equal(t, "Go", f.Value())
}

func TestField_Update_WhenBlurred(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "", f.Value())
}

func TestField_View(t *testing.T) {
	f := NewField(nil, "Location", "Remote")

	view := f.View()

	assert.Contains(t, view, "Location")
	assert.Contains(t, view, "Remote")
}

func TestField_SetValue(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	f.SetValue("Frontend Developer")

	assert.Equal(t, "Frontend Developer", f.Value())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	f.Focus()
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_SetWidth(t *testing.T) {
	f := NewField(nil, "Job Title", "")

	f.SetWidth(100)
	assert.Equal(t, 100, f.Width())
	assert.Equal(t, 82, f.textinput.Width)

	f.SetWidth(10)
	assert.Equal(t, 20, f.textinput.Width)
}

func TestField_Reset(t *testing.T) {
	f := NewField(nil, "Job Title", "")
	f.SetValue("Designer")

	f.Reset()

	assert.Equal(t, "", f.Value())
}
