package domain

import "strings"

// FormState is the transient state of a search form.
type FormState struct {
	JobTitle     string
	Location     string
	Selection    Selection
	ErrorMessage string
}

// Validate applies the submission checks in order; the first failure wins.
// It returns the sites to search, in registry order, when the form is valid.
func (f *FormState) Validate(sites []Site) ([]Site, *ValidationError) {
	if strings.TrimSpace(f.JobTitle) == "" {
		return nil, &ValidationError{Kind: MissingJobTitle}
	}
	selected := f.Selection.Selected(sites)
	if len(selected) == 0 {
		return nil, &ValidationError{Kind: NoSiteSelected}
	}
	return selected, nil
}

// Snapshot returns a copy that shares no mutable state with f.
func (f *FormState) Snapshot() FormState {
	return FormState{
		JobTitle:     f.JobTitle,
		Location:     f.Location,
		Selection:    f.Selection.Clone(),
		ErrorMessage: f.ErrorMessage,
	}
}
