// Package browser provides URL openers: the system browser, a custom
// browser command, or a plain writer for printing URLs.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/browser"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
)

// Ensure the openers implement the interface.
var (
	_ driven.URLOpener = (*SystemOpener)(nil)
	_ driven.URLOpener = (*PrintOpener)(nil)
)

// SystemOpener opens URLs in the default browser, or with a configured
// command when one is set.
type SystemOpener struct {
	mu      sync.RWMutex
	command []string

	// openDefault opens a URL with the platform handler.
	openDefault func(url string) error

	// start launches a command without waiting for it to exit.
	start func(ctx context.Context, name string, args ...string) error
}

// NewSystemOpener creates an opener. An empty command uses the platform
// default (open, xdg-open or the Windows URL handler).
func NewSystemOpener(command string) *SystemOpener {
	o := &SystemOpener{
		openDefault: browser.OpenURL,
		start:       startDetached,
	}
	o.SetCommand(command)
	return o
}

// Quiet discards the output of the platform handler so it cannot draw
// over a full-screen terminal UI.
func Quiet() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// SetCommand replaces the browser command. The URL is appended as the
// final argument, e.g. "firefox --new-tab".
func (o *SystemOpener) SetCommand(command string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.command = strings.Fields(command)
}

// Command returns the configured command, or "" for the system default.
func (o *SystemOpener) Command() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return strings.Join(o.command, " ")
}

// Open hands url to the browser.
func (o *SystemOpener) Open(ctx context.Context, url string) error {
	o.mu.RLock()
	command := o.command
	o.mu.RUnlock()

	if len(command) == 0 {
		if err := o.openDefault(url); err != nil {
			// No launcher (xdg-open and friends) on this system.
			if errors.Is(err, exec.ErrNotFound) {
				return fmt.Errorf("%w: %w", domain.ErrUnsupportedPlatform, err)
			}
			return fmt.Errorf("opening browser: %w", err)
		}
		return nil
	}

	args := make([]string, 0, len(command))
	args = append(args, command[1:]...)
	args = append(args, url)
	if err := o.start(ctx, command[0], args...); err != nil {
		return fmt.Errorf("running %s: %w", command[0], err)
	}
	return nil
}

// startDetached starts the command and reaps it in the background.
func startDetached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() //nolint:errcheck // exit status of the browser is not observable
	return nil
}

// PrintOpener writes each URL on its own line instead of opening it.
type PrintOpener struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrintOpener creates an opener that prints to w.
func NewPrintOpener(w io.Writer) *PrintOpener {
	return &PrintOpener{w: w}
}

// Open writes url followed by a newline.
func (o *PrintOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintln(o.w, url)
	return err
}
