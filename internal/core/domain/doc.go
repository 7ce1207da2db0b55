// Package domain defines the core business entities for atsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Site: An ATS platform with a display name and a web domain
//   - Selection: Per-domain inclusion flags for the next search
//   - FormState: The transient state of one search form
//   - ValidationError: A recoverable user-input failure
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
