// Package cli provides the cobra command tree for atsearch.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/atsearch/internal/adapters/driven/browser"
	"github.com/custodia-labs/atsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/atsearch/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/atsearch/internal/adapters/driven/sites"
	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
	"github.com/custodia-labs/atsearch/internal/core/services"
	"github.com/custodia-labs/atsearch/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services wired by setup before any command runs.
var (
	configStore      driven.ConfigStore
	fileConfigStore  *file.ConfigStore
	settingsService  driving.SettingsService
	siteRegistry     driving.SiteRegistry
	systemOpener     *browser.SystemOpener
	dispatchSettings domain.DispatchSettings
)

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "atsearch",
	Short: "Search applicant tracking systems for open roles",
	Long: `atsearch opens one Google search per applicant tracking system (ATS),
each scoped to that system's job board domain with site:<domain>.

Run without arguments in a terminal to use the interactive form, or use
the search command for one-shot searches.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	bindRootFlags()
}

func bindRootFlags() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.atsearch)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "use built-in defaults and do not read or write a config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// runRoot launches the TUI in a terminal and prints help otherwise.
func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return cmd.Help()
	}
	return runTUI(cmd, args)
}

// setup wires the config store, settings, registry and opener.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.Section("Setup")

	if err := openConfigStore(); err != nil {
		return err
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		// Keep settings commands usable so a bad value can be fixed.
		logger.Error("%v; using defaults", err)
		settings = domain.DefaultAppSettings()
	}
	dispatchSettings = settings.Dispatch
	logger.Debug("Dispatch interval %s, browser %q, print-only %t",
		dispatchSettings.Interval, dispatchSettings.BrowserCommand, dispatchSettings.PrintOnly)

	registry, err := services.LoadSiteRegistry(sites.NewSource())
	if err != nil {
		return err
	}
	siteRegistry = registry
	logger.Debug("Loaded %d sites", len(registry.Sites()))

	systemOpener = browser.NewSystemOpener(dispatchSettings.BrowserCommand)
	return nil
}

// openConfigStore opens the file store, or a memory store with --no-config.
func openConfigStore() error {
	fileConfigStore = nil
	if noConfig {
		configStore = memory.NewConfigStore()
		logger.Debug("Using in-memory config")
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fileConfigStore = store
	configStore = store
	logger.Debug("Using config %s", store.Path())
	return nil
}

// newFormService builds a form service whose dispatcher prints URLs to w
// when printOnly is set and opens them in the browser otherwise.
func newFormService(w io.Writer, printOnly bool, interval time.Duration) (*services.FormService, *services.Dispatcher) {
	var opener driven.URLOpener = systemOpener
	if printOnly {
		opener = browser.NewPrintOpener(w)
	}
	dispatcher := services.NewDispatcher(opener, interval)
	return services.NewFormService(siteRegistry, dispatcher), dispatcher
}
