package tui

import "errors"

// ErrMissingSearchForm is returned when the form factory is not provided.
var ErrMissingSearchForm = errors.New("tui: search form factory is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
