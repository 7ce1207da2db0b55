package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

var (
	searchLocation string
	searchSites    []string
	searchAll      bool
	searchPrint    bool
	searchJSON     bool
	searchInterval int
)

var searchCmd = &cobra.Command{
	Use:   "search <job title>",
	Short: "Open job searches on selected ATS sites",
	Long: `Opens one Google search per selected ATS site, each restricted to the
site's domain. Searches open one at a time, separated by the dispatch interval.

Sites are chosen by name or domain with --site (repeatable), or all at once
with --all. See "atsearch sites" for the list.

Examples:
  atsearch search "Frontend Developer" -s greenhouse -s lever
  atsearch search "Data Engineer" -l Berlin --all --print`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	bindSearchFlags()
	rootCmd.AddCommand(searchCmd)
}

func bindSearchFlags() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "location to search in (default Remote)")
	searchCmd.Flags().StringSliceVarP(&searchSites, "site", "s", nil, "site name or domain to search (repeatable)")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "search every site")
	searchCmd.Flags().BoolVar(&searchPrint, "print", false, "print URLs instead of opening them")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the searches as JSON")
	searchCmd.Flags().IntVar(&searchInterval, "interval", -1, "milliseconds between opens (default from settings)")
}

// searchResultJSON is one search in --json output.
type searchResultJSON struct {
	Site   string `json:"site"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
	Opened bool   `json:"opened"`
	Error  string `json:"error,omitempty"`
}

// searchOutputJSON is the --json output.
type searchOutputJSON struct {
	SubmissionID string             `json:"submission_id"`
	JobTitle     string             `json:"job_title"`
	Location     string             `json:"location"`
	Searches     []searchResultJSON `json:"searches"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if siteRegistry == nil {
		return fmt.Errorf("site registry not configured")
	}

	selected, err := selectedSites()
	if err != nil {
		return err
	}

	interval, err := searchDispatchInterval()
	if err != nil {
		return err
	}

	printOnly := searchPrint || dispatchSettings.PrintOnly
	var printTo io.Writer = cmd.OutOrStdout()
	if searchJSON {
		printTo = io.Discard
	}
	if printOnly {
		interval = 0
	}
	forms, _ := newFormService(printTo, printOnly, interval)

	form := forms.NewForm()
	form.SetJobTitle(strings.Join(args, " "))
	form.SetLocation(searchLocation)
	for _, site := range selected {
		form.ToggleSite(site.Domain)
	}

	sub := form.Submit(cmd.Context())
	if !sub.Accepted() {
		return sub.Invalid
	}

	if !printOnly && !searchJSON {
		cmd.Printf("Opening %d searches...\n", len(sub.URLs))
	}

	results := make([]searchResultJSON, len(sub.URLs))
	for i, u := range sub.URLs {
		results[i] = searchResultJSON{Site: selected[i].Name, Domain: selected[i].Domain, URL: u}
	}

	failed := 0
	for res := range sub.Results {
		if res.Err != nil {
			failed++
			results[res.Index].Error = res.Err.Error()
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open %s: %v\n", results[res.Index].Site, res.Err)
			continue
		}
		results[res.Index].Opened = true
		if !printOnly && !searchJSON {
			cmd.Printf("  [%d/%d] %s\n", res.Index+1, res.Total, results[res.Index].Site)
		}
	}

	if searchJSON {
		out := searchOutputJSON{
			SubmissionID: sub.ID,
			JobTitle:     form.State().JobTitle,
			Location:     domain.EffectiveLocation(searchLocation),
			Searches:     results,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal searches: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if failed > 0 {
		return fmt.Errorf("could not open %d of %d searches", failed, len(sub.URLs))
	}
	return nil
}

// selectedSites resolves --site and --all against the registry.
// Selecting nothing is left to form validation.
func selectedSites() ([]domain.Site, error) {
	if searchAll {
		return siteRegistry.Sites(), nil
	}
	return siteRegistry.Resolve(searchSites)
}

// searchDispatchInterval returns the --interval override or the configured
// interval.
func searchDispatchInterval() (time.Duration, error) {
	if searchInterval < 0 {
		return dispatchSettings.Interval, nil
	}
	interval := time.Duration(searchInterval) * time.Millisecond
	if err := (domain.DispatchSettings{Interval: interval}).Validate(); err != nil {
		return 0, err
	}
	return interval, nil
}
