package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
)

// SearchInput is the input schema for build_search_urls and open_search.
type SearchInput struct {
	JobTitle string   `json:"job_title" jsonschema:"the job title to search for, quoted verbatim in the query"`
	Location string   `json:"location,omitempty" jsonschema:"city or region; empty searches for Remote roles"`
	Sites    []string `json:"sites,omitempty" jsonschema:"ATS sites to search, by name or domain (see list_sites)"`
}

// SearchURLOutput is one generated search.
type SearchURLOutput struct {
	Site   string `json:"site"`
	Domain string `json:"domain"`
	URL    string `json:"url"`
}

// BuildOutput is the output schema for build_search_urls.
type BuildOutput struct {
	Searches []SearchURLOutput `json:"searches"`
	Count    int               `json:"count"`
	Error    string            `json:"error,omitempty"`
}

// OpenOutput is the output schema for open_search.
type OpenOutput struct {
	SubmissionID string            `json:"submission_id,omitempty"`
	Searches     []SearchURLOutput `json:"searches"`
	Opened       int               `json:"opened"`
	Failures     []string          `json:"failures,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// ListSitesInput is the (empty) input schema for list_sites.
type ListSitesInput struct{}

// SiteOutput is one registry entry.
type SiteOutput struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// ListSitesOutput is the output schema for list_sites.
type ListSitesOutput struct {
	Sites []SiteOutput `json:"sites"`
	Count int          `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_search_urls",
		Description: "Build Google search URLs that look for a job title on selected ATS sites, without opening them",
	}, s.handleBuildSearchURLs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open_search",
		Description: "Open one Google search per selected ATS site in the user's browser",
	}, s.handleOpenSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sites",
		Description: "List the ATS sites that can be searched",
	}, s.handleListSites)
}

// handleBuildSearchURLs handles the build_search_urls tool invocation.
func (s *Server) handleBuildSearchURLs(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, BuildOutput, error) {
	form, selected, err := s.fillForm(input)
	if err != nil {
		return nil, BuildOutput{}, err
	}

	urls, verr := form.BuildURLs()
	if verr != nil {
		return nil, BuildOutput{Searches: []SearchURLOutput{}, Error: verr.Message()}, nil
	}

	searches := searchOutputs(selected, urls)
	return nil, BuildOutput{Searches: searches, Count: len(searches)}, nil
}

// handleOpenSearch handles the open_search tool invocation.
// It waits until every URL has been handled.
func (s *Server) handleOpenSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, OpenOutput, error) {
	form, selected, err := s.fillForm(input)
	if err != nil {
		return nil, OpenOutput{}, err
	}

	sub := form.Submit(ctx)
	if !sub.Accepted() {
		return nil, OpenOutput{
			SubmissionID: sub.ID,
			Searches:     []SearchURLOutput{},
			Error:        form.ErrorMessage(),
		}, nil
	}

	out := OpenOutput{
		SubmissionID: sub.ID,
		Searches:     searchOutputs(selected, sub.URLs),
	}
	if sub.Results == nil {
		return nil, out, nil
	}
	for res := range sub.Results {
		if res.Err != nil {
			out.Failures = append(out.Failures, fmt.Sprintf("%s: %v", res.URL, res.Err))
			continue
		}
		out.Opened++
	}
	return nil, out, nil
}

// handleListSites handles the list_sites tool invocation.
func (s *Server) handleListSites(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSitesInput,
) (*mcp.CallToolResult, ListSitesOutput, error) {
	sites := siteOutputs(s.ports.Registry.Sites())
	return nil, ListSitesOutput{Sites: sites, Count: len(sites)}, nil
}

// fillForm creates a form from input. Unknown site keys are an error;
// an empty site list is left for form validation to report.
func (s *Server) fillForm(input SearchInput) (driving.SearchForm, []domain.Site, error) {
	sites, err := s.ports.Registry.Resolve(input.Sites)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving sites: %w", err)
	}

	form := s.ports.Forms.NewForm()
	form.SetJobTitle(input.JobTitle)
	form.SetLocation(input.Location)
	for _, site := range sites {
		form.ToggleSite(site.Domain)
	}
	return form, sites, nil
}

// searchOutputs pairs resolved sites with their URLs. Both are in
// registry order.
func searchOutputs(sites []domain.Site, urls []string) []SearchURLOutput {
	out := make([]SearchURLOutput, 0, len(urls))
	for i, u := range urls {
		var site domain.Site
		if i < len(sites) {
			site = sites[i]
		}
		out = append(out, SearchURLOutput{Site: site.Name, Domain: site.Domain, URL: u})
	}
	return out
}

func siteOutputs(sites []domain.Site) []SiteOutput {
	out := make([]SiteOutput, len(sites))
	for i, site := range sites {
		out[i] = SiteOutput{Name: site.Name, Domain: site.Domain}
	}
	return out
}
