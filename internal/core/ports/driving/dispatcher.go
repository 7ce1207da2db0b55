package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// Dispatcher opens search URLs one after another, spaced by an interval.
type Dispatcher interface {
	// Dispatch opens urls in order. The first opens immediately and each
	// following one an interval after the previous. Cancelling ctx does
	// not stop a dispatch once started. The returned channel is buffered
	// for every result and closed when done, so it may be ignored.
	Dispatch(ctx context.Context, submissionID string, urls []string) <-chan domain.DispatchResult

	// SetInterval changes the interval for subsequent dispatches.
	SetInterval(d time.Duration)

	// Interval returns the current interval.
	Interval() time.Duration

	// Pending returns the number of dispatches still opening URLs.
	Pending() int

	// Wait blocks until every dispatch started so far has finished.
	Wait()
}
