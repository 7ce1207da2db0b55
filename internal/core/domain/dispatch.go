package domain

// DispatchResult reports the outcome of opening one search URL.
// Err is set when the opener failed; a nil Err does not mean the browser
// showed the page, only that the open request was handed off.
type DispatchResult struct {
	SubmissionID string
	Index        int
	Total        int
	URL          string
	Err          error
}

// Last returns true if this is the final URL of its submission.
func (r DispatchResult) Last() bool {
	return r.Index == r.Total-1
}
