package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure how searches are opened.

Settings are stored in ~/.atsearch/config.toml unless --config-dir or
--no-config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsIntervalCmd = &cobra.Command{
	Use:   "interval <ms>",
	Short: "Set the delay between opened searches",
	Long: `Set the delay, in milliseconds, between successive searches being opened.
Browsers may block a burst of new tabs as popups; a short delay avoids that.
Accepts 0 to 10000.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsInterval,
}

var settingsBrowserCmd = &cobra.Command{
	Use:   "browser [command...]",
	Short: "Set the browser command",
	Long: `Set the command used to open searches. The URL is appended as the last
argument. Run without a command to go back to the system default browser.

Pass flags for the browser after "--":
  atsearch settings browser -- firefox --new-tab`,
	RunE: runSettingsBrowser,
}

var settingsPrintOnlyCmd = &cobra.Command{
	Use:   "print-only <true|false>",
	Short: "Print URLs instead of opening them",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPrintOnly,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsIntervalCmd)
	settingsCmd.AddCommand(settingsBrowserCmd)
	settingsCmd.AddCommand(settingsPrintOnlyCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dispatch]")
	cmd.Printf("  Interval: %s\n", settings.Dispatch.Interval)
	if settings.Dispatch.UsesSystemBrowser() {
		cmd.Println("  Browser: system default")
	} else {
		cmd.Printf("  Browser: %s\n", settings.Dispatch.BrowserCommand)
	}
	cmd.Printf("  Print only: %t\n", settings.Dispatch.PrintOnly)
	cmd.Println()

	cmd.Printf("Config: %s\n", configLocation())
	return nil
}

func runSettingsInterval(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	ms, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid interval %q: must be a whole number of milliseconds", args[0])
	}

	interval := time.Duration(ms) * time.Millisecond
	if err := settingsService.SetInterval(interval); err != nil {
		return fmt.Errorf("failed to set interval: %w", err)
	}

	cmd.Printf("Interval set to %s\n", interval)
	return nil
}

func runSettingsBrowser(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	command := strings.Join(args, " ")
	if err := settingsService.SetBrowser(command); err != nil {
		return fmt.Errorf("failed to set browser: %w", err)
	}

	if command == "" {
		cmd.Println("Browser set to system default")
		return nil
	}
	cmd.Printf("Browser set to %s\n", command)
	return nil
}

func runSettingsPrintOnly(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: use true or false", args[0])
	}

	if err := settingsService.SetPrintOnly(enabled); err != nil {
		return fmt.Errorf("failed to set print-only: %w", err)
	}

	cmd.Printf("Print only set to %t\n", enabled)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults")
	return nil
}

// configLocation describes where settings are stored.
func configLocation() string {
	if configStore == nil || configStore.Path() == "" {
		return "in memory (--no-config)"
	}
	return configStore.Path()
}
