package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/atsearch/internal/adapters/driven/browser"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/atsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
	"github.com/custodia-labs/atsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search form",
	Long: `Launch the interactive terminal form.

Enter a job title and an optional location, tick the ATS sites to search
and press enter. One search opens per site.

Controls:
  tab/shift+tab  Move between fields
  ←↓↑→ / hjkl    Move in the site grid
  space          Toggle site
  a              Toggle all sites
  enter          Search
  s              Settings
  ?              Help
  esc            Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Browser launchers must not write over the alt screen.
	browser.Quiet()

	// Printed URLs are held until the TUI exits.
	printed := &syncBuffer{}
	forms, dispatcher := newFormService(printed, dispatchSettings.PrintOnly, dispatchSettings.Interval)

	ports := tui.NewPorts(forms, settingsService)
	ports.Reload = func() messages.SettingsReloaded {
		return reloadSettings(dispatcher)
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if fileConfigStore != nil {
		go func() {
			err := fileConfigStore.Watch(ctx, func() {
				p.Send(reloadSettings(dispatcher))
			})
			if err != nil {
				logger.Warn("Config watcher stopped: %v", err)
			}
		}()
	}

	_, runErr := p.Run()
	finishPending(dispatcher, printed, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}

// finishPending waits for searches submitted before the TUI exited, then
// writes any printed URLs to out.
func finishPending(dispatcher driving.Dispatcher, printed *syncBuffer, out, errOut io.Writer) {
	if n := dispatcher.Pending(); n > 0 {
		fmt.Fprintln(errOut, "Finishing pending searches...")
		logger.Info("Waiting for %d pending dispatches", n)
	}
	dispatcher.Wait()

	if s := printed.String(); s != "" {
		fmt.Fprint(out, s)
	}
}

// syncBuffer is a bytes.Buffer safe for a dispatch goroutine to write to
// while another goroutine reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// reloadSettings re-reads settings and applies the interval and browser
// command. Print-only takes effect on the next start.
func reloadSettings(dispatcher driving.Dispatcher) messages.SettingsReloaded {
	settings, err := settingsService.Get()
	if err != nil {
		return messages.SettingsReloaded{Err: err}
	}

	dispatcher.SetInterval(settings.Dispatch.Interval)
	if systemOpener != nil {
		systemOpener.SetCommand(settings.Dispatch.BrowserCommand)
	}
	logger.Info("Applied settings: interval %s, browser %q",
		settings.Dispatch.Interval, settings.Dispatch.BrowserCommand)
	return messages.SettingsReloaded{Settings: settings}
}
