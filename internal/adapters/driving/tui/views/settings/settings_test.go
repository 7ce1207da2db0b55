package settings

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/services"
)

func newTestView(t *testing.T, values map[string]any) (*View, *services.SettingsService) {
	t.Helper()
	svc := services.NewSettingsService(memory.NewConfigStore(values))
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	load(t, v)
	return v, svc
}

// load runs Init and feeds the loaded settings back into the view.
func load(t *testing.T, v *View) {
	t.Helper()
	cmd := v.Init()
	require.NotNil(t, cmd)
	v.Update(cmd())
}

// run executes cmd and feeds every resulting message back into the view.
func run(v *View, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 5; i++ {
		msg := cmd()
		if _, ok := msg.(messages.ViewChanged); ok {
			return
		}
		_, cmd = v.Update(msg)
	}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(v *View, s string) {
	for _, r := range s {
		v.Update(runes(string(r)))
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "interval", ItemInterval.String())
	assert.Equal(t, "browser", ItemBrowser.String())
	assert.Equal(t, "print_only", ItemPrintOnly.String())
	assert.Equal(t, "reset", ItemReset.String())
	assert.Equal(t, "unknown", Item(42).String())
}

func TestNewView_NilStyles(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.Contains(t, v.View(), "Loading settings...")
}

func TestInit_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)

	msg := v.Init()()

	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoSettingsService)
}

func TestView_ShowsDefaults(t *testing.T) {
	v, _ := newTestView(t, nil)

	out := v.View()

	assert.Contains(t, out, "Interval: 300ms")
	assert.Contains(t, out, "Browser: system default")
	assert.Contains(t, out, "Print only: off")
	assert.Contains(t, out, "Restore defaults")
}

func TestNavigation(t *testing.T) {
	v, _ := newTestView(t, nil)

	v.Update(runes("j"))
	assert.Equal(t, ItemBrowser, v.Selected())

	v.Update(key(tea.KeyDown))
	v.Update(key(tea.KeyDown))
	v.Update(key(tea.KeyDown))
	assert.Equal(t, ItemReset, v.Selected())

	v.Update(runes("k"))
	assert.Equal(t, ItemPrintOnly, v.Selected())

	v.Update(key(tea.KeyUp))
	v.Update(key(tea.KeyUp))
	v.Update(key(tea.KeyUp))
	assert.Equal(t, ItemInterval, v.Selected())
}

func TestEditInterval(t *testing.T) {
	v, svc := newTestView(t, nil)

	v.Update(key(tea.KeyEnter))
	require.True(t, v.Editing())
	assert.Contains(t, v.View(), "New value")

	v.Update(key(tea.KeyBackspace))
	v.Update(key(tea.KeyBackspace))
	v.Update(key(tea.KeyBackspace))
	typeText(v, "750")

	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	assert.False(t, v.Editing())
	assert.NoError(t, v.Err())
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, settings.Dispatch.Interval)
	assert.Contains(t, v.View(), "Interval: 750ms")
}

func TestEditInterval_NotANumber(t *testing.T) {
	v, _ := newTestView(t, nil)

	v.Update(key(tea.KeyEnter))
	typeText(v, "x")
	_, cmd := v.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.True(t, v.Editing())
	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "invalid interval")
}

func TestEditInterval_OutOfRange(t *testing.T) {
	v, svc := newTestView(t, nil)

	v.Update(key(tea.KeyEnter))
	typeText(v, "0000")
	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	assert.True(t, v.Editing())
	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDispatchInterval, settings.Dispatch.Interval)
}

func TestEditBrowser(t *testing.T) {
	v, svc := newTestView(t, nil)

	v.Update(runes("j"))
	v.Update(key(tea.KeyEnter))
	typeText(v, "firefox --new-tab")
	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "firefox --new-tab", settings.Dispatch.BrowserCommand)
	assert.Contains(t, v.View(), "Browser: firefox --new-tab")
}

func TestEditBrowser_EmptyRestoresSystemDefault(t *testing.T) {
	v, svc := newTestView(t, map[string]any{"dispatch.browser": "chromium"})

	v.Update(runes("j"))
	v.Update(key(tea.KeyEnter))
	for range "chromium" {
		v.Update(key(tea.KeyBackspace))
	}
	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.Dispatch.UsesSystemBrowser())
}

func TestEditCancel(t *testing.T) {
	v, svc := newTestView(t, nil)

	v.Update(key(tea.KeyEnter))
	typeText(v, "9")
	v.Update(key(tea.KeyEsc))

	assert.False(t, v.Editing())
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDispatchInterval, settings.Dispatch.Interval)
}

func TestTogglePrintOnly(t *testing.T) {
	v, svc := newTestView(t, nil)

	v.Update(runes("j"))
	v.Update(runes("j"))
	assert.Contains(t, v.View(), "next time atsearch starts")

	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.Dispatch.PrintOnly)
	assert.Contains(t, v.View(), "Print only: on")
}

func TestReset(t *testing.T) {
	v, svc := newTestView(t, map[string]any{
		"dispatch.interval_ms": 900,
		"dispatch.print_only":  true,
	})
	assert.Contains(t, v.View(), "Interval: 900ms")

	for i := 0; i < 3; i++ {
		v.Update(runes("j"))
	}
	_, cmd := v.Update(key(tea.KeyEnter))
	run(v, cmd)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDispatchInterval, settings.Dispatch.Interval)
	assert.False(t, settings.Dispatch.PrintOnly)
}

func TestEscReturnsToForm(t *testing.T) {
	v, _ := newTestView(t, nil)

	_, cmd := v.Update(key(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewForm}, cmd())
}

func TestActivateBeforeLoad(t *testing.T) {
	v := NewView(nil, nil, nil)

	_, cmd := v.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
}

func TestViewReset(t *testing.T) {
	v, _ := newTestView(t, nil)
	v.Update(runes("j"))
	v.Update(key(tea.KeyEnter))

	v.Reset()

	assert.Equal(t, ItemInterval, v.Selected())
	assert.False(t, v.Editing())
	assert.NoError(t, v.Err())
}
