package driving

import (
	"context"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// SearchForm is the controller behind one search form.
// It owns the form state for its lifetime; state is never shared
// between forms.
type SearchForm interface {
	// SetJobTitle replaces the job title. No validation is applied.
	SetJobTitle(text string)

	// SetLocation replaces the location. No validation is applied.
	SetLocation(text string)

	// ToggleSite flips the selection flag for domain.
	// Unknown domains are ignored.
	ToggleSite(domain string)

	// BuildURLs validates the current state and returns the search URLs
	// without dispatching them or touching the error message.
	BuildURLs() ([]string, *domain.ValidationError)

	// Submit validates the form, builds one URL per selected site in
	// registry order and dispatches them. Validation failures are
	// recorded in the error message and nothing is dispatched.
	Submit(ctx context.Context) Submission

	// State returns a snapshot of the form state.
	State() domain.FormState

	// ErrorMessage returns the last validation message, or "".
	ErrorMessage() string

	// Sites returns the registry the form was built from.
	Sites() []domain.Site
}

// FormFactory creates independent search forms over the same registry.
type FormFactory interface {
	NewForm() SearchForm
}

// Submission is the outcome of SearchForm.Submit.
type Submission struct {
	// ID identifies this submission in logs and dispatch results.
	ID string

	// URLs holds the generated search URLs in registry order.
	// Empty when validation failed.
	URLs []string

	// Invalid is the validation failure, if any. It mirrors the form's
	// error message.
	Invalid *domain.ValidationError

	// Results reports each open as it happens and is closed when the last
	// URL has been handled. Nil when nothing was dispatched.
	Results <-chan domain.DispatchResult
}

// Accepted returns true if the submission passed validation.
func (s Submission) Accepted() bool {
	return s.Invalid == nil
}
