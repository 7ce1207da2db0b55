// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The form controller is the heart of atsearch: it validates a search
// form, builds one scoped search URL per selected site and hands them
// to the dispatcher, which opens them one interval apart.
package services
