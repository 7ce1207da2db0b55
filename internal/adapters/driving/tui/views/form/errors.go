package form

import "errors"

// Error definitions for the form view.
var (
	// ErrNoSearchForm indicates that no search form was provided.
	ErrNoSearchForm = errors.New("search form is required")
)
