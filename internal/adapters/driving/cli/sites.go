package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var sitesJSON bool

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the ATS sites that can be searched",
	Args:  cobra.NoArgs,
	RunE:  runSites,
}

func init() {
	bindSitesFlags()
	rootCmd.AddCommand(sitesCmd)
}

func bindSitesFlags() {
	sitesCmd.Flags().BoolVar(&sitesJSON, "json", false, "output sites as JSON")
}

func runSites(cmd *cobra.Command, _ []string) error {
	if siteRegistry == nil {
		return errors.New("site registry not configured")
	}

	sites := siteRegistry.Sites()

	if sitesJSON {
		data, err := json.MarshalIndent(sites, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal sites: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	width := len("NAME")
	for _, s := range sites {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-*s  %s\n", width, "NAME", "DOMAIN")
	for _, s := range sites {
		fmt.Fprintf(out, "%-*s  %s\n", width, s.Name, s.Domain)
	}
	return nil
}
