package mcp

import "errors"

// ErrMissingSearchForm is returned when the form factory is not provided.
var ErrMissingSearchForm = errors.New("mcp: search form factory is required")

// ErrMissingRegistry is returned when the site registry is not provided.
var ErrMissingRegistry = errors.New("mcp: site registry is required")
