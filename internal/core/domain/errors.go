package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Registry Errors.

	// ErrDuplicateDomain indicates two registry entries share a domain.
	// Domains key the selection map, so duplicates are rejected at startup.
	ErrDuplicateDomain = errors.New("duplicate site domain")

	// ErrEmptyRegistry indicates the site registry has no entries.
	ErrEmptyRegistry = errors.New("site registry is empty")

	// Dispatch Errors.

	// ErrUnsupportedPlatform indicates the OS has no known way to open URLs.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrOpenerUnavailable indicates no URL opener has been configured.
	ErrOpenerUnavailable = errors.New("url opener unavailable")
)

// ValidationKind identifies why a form submission was rejected.
type ValidationKind int

const (
	// MissingJobTitle means the job title was empty after trimming.
	MissingJobTitle ValidationKind = iota + 1

	// NoSiteSelected means no site was selected.
	NoSiteSelected
)

// String returns the string representation.
func (k ValidationKind) String() string {
	switch k {
	case MissingJobTitle:
		return "missing_job_title"
	case NoSiteSelected:
		return "no_site_selected"
	default:
		return "unknown"
	}
}

// ValidationError is a recoverable user-input failure.
// It is captured into FormState.ErrorMessage and never surfaced as a fault.
type ValidationError struct {
	Kind ValidationKind
}

// Message returns the user-facing text for the failure.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case MissingJobTitle:
		return "Please enter a job title"
	case NoSiteSelected:
		return "Please select at least one site to search"
	default:
		return "Invalid search"
	}
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Message()
}

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel validation errors for use with errors.Is.
var (
	ErrMissingJobTitle = &ValidationError{Kind: MissingJobTitle}
	ErrNoSiteSelected  = &ValidationError{Kind: NoSiteSelected}
)
