package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
	"github.com/custodia-labs/atsearch/internal/logger"
)

// Ensure FormController implements the interface.
var _ driving.SearchForm = (*FormController)(nil)

// Ensure FormService implements the interface.
var _ driving.FormFactory = (*FormService)(nil)

// FormController owns the state of one search form.
// It is not safe for concurrent use; callers serialise events the way a
// UI event loop does.
type FormController struct {
	sites      []domain.Site
	dispatcher driving.Dispatcher
	state      domain.FormState
	newID      func() string
}

// NewFormController creates a form over the registry's sites with every
// site deselected. A nil dispatcher builds URLs but opens nothing.
func NewFormController(registry driving.SiteRegistry, dispatcher driving.Dispatcher) *FormController {
	sites := registry.Sites()
	return &FormController{
		sites:      sites,
		dispatcher: dispatcher,
		state: domain.FormState{
			Selection: domain.NewSelection(sites),
		},
		newID: uuid.NewString,
	}
}

// SetJobTitle replaces the job title.
func (c *FormController) SetJobTitle(text string) {
	c.state.JobTitle = text
}

// SetLocation replaces the location.
func (c *FormController) SetLocation(text string) {
	c.state.Location = text
}

// ToggleSite flips the selection flag for d. Unknown domains are ignored.
func (c *FormController) ToggleSite(d string) {
	if !c.state.Selection.Toggle(d) {
		logger.Debug("Ignoring toggle for unknown site %q", d)
	}
}

// BuildURLs validates the form and returns the URLs it would open.
func (c *FormController) BuildURLs() ([]string, *domain.ValidationError) {
	selected, verr := c.state.Validate(c.sites)
	if verr != nil {
		return nil, verr
	}
	return domain.SearchURLs(selected, c.state.JobTitle, c.state.Location), nil
}

// Submit validates the form and dispatches one search per selected site.
// URLs are computed from the state at call time; later edits do not
// affect a dispatch in progress.
func (c *FormController) Submit(ctx context.Context) driving.Submission {
	id := c.newID()

	logger.Section("Submit")
	logger.Debug("Submission %s: title=%q location=%q selected=%d",
		id, c.state.JobTitle, c.state.Location, c.state.Selection.Count())

	urls, verr := c.BuildURLs()
	if verr != nil {
		c.state.ErrorMessage = verr.Message()
		logger.Info("Submission %s rejected: %s", id, verr.Kind)
		return driving.Submission{ID: id, Invalid: verr}
	}

	c.state.ErrorMessage = ""
	for i, u := range urls {
		logger.Debug("URL %d: %s", i+1, u)
	}

	sub := driving.Submission{ID: id, URLs: urls}
	if c.dispatcher != nil {
		sub.Results = c.dispatcher.Dispatch(ctx, id, urls)
	} else {
		logger.Warn("No dispatcher configured, %d URLs not opened", len(urls))
	}
	logger.Info("Submission %s accepted: %d searches", id, len(urls))
	return sub
}

// State returns a snapshot of the form state.
func (c *FormController) State() domain.FormState {
	return c.state.Snapshot()
}

// ErrorMessage returns the last validation message, or "".
func (c *FormController) ErrorMessage() string {
	return c.state.ErrorMessage
}

// Sites returns the sites the form was built from, in registry order.
func (c *FormController) Sites() []domain.Site {
	out := make([]domain.Site, len(c.sites))
	copy(out, c.sites)
	return out
}

// FormService creates independent forms sharing a registry and dispatcher.
type FormService struct {
	registry   driving.SiteRegistry
	dispatcher driving.Dispatcher
}

// NewFormService creates a new form service.
func NewFormService(registry driving.SiteRegistry, dispatcher driving.Dispatcher) *FormService {
	return &FormService{
		registry:   registry,
		dispatcher: dispatcher,
	}
}

// NewForm returns a fresh form with every site deselected.
func (s *FormService) NewForm() driving.SearchForm {
	return NewFormController(s.registry, s.dispatcher)
}
