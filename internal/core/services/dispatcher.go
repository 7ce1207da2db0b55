package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/atsearch/internal/core/domain"
	"github.com/custodia-labs/atsearch/internal/core/ports/driven"
	"github.com/custodia-labs/atsearch/internal/core/ports/driving"
	"github.com/custodia-labs/atsearch/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// Dispatcher opens search URLs through a URLOpener, spacing them so the
// i-th open happens i intervals after the first.
//
// Each dispatch paces itself with its own burst-1 token bucket and a single
// goroutine, so opens always happen in the order given.
type Dispatcher struct {
	opener driven.URLOpener

	mu       sync.RWMutex
	interval time.Duration

	// inflight tracks running dispatches so callers can wait for them
	// before the process exits.
	inflight sync.WaitGroup
	pending  atomic.Int32
}

// NewDispatcher creates a dispatcher. A non-positive interval opens all
// URLs back to back.
func NewDispatcher(opener driven.URLOpener, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		opener:   opener,
		interval: interval,
	}
}

// SetInterval changes the interval for subsequent dispatches.
func (d *Dispatcher) SetInterval(interval time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interval = interval
}

// Interval returns the current interval.
func (d *Dispatcher) Interval() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.interval
}

// Dispatch opens urls in order and reports each outcome on the returned
// channel. There is no cancellation: ctx values are kept but its
// cancellation and deadline are dropped.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	submissionID string,
	urls []string,
) <-chan domain.DispatchResult {
	results := make(chan domain.DispatchResult, len(urls))
	if len(urls) == 0 {
		close(results)
		return results
	}

	interval := d.Interval()
	limiter := newPacer(interval)
	ctx = context.WithoutCancel(ctx)

	logger.Debug("Dispatching %d URLs for %s (interval %s)", len(urls), submissionID, interval)

	d.inflight.Add(1)
	d.pending.Add(1)
	go func() {
		defer d.inflight.Done()
		defer d.pending.Add(-1)
		defer close(results)
		for i, u := range urls {
			res := domain.DispatchResult{
				SubmissionID: submissionID,
				Index:        i,
				Total:        len(urls),
				URL:          u,
			}
			if err := limiter.Wait(ctx); err != nil {
				res.Err = err
			} else {
				res.Err = d.open(ctx, u)
			}
			if res.Err != nil {
				logger.Warn("Open %d/%d failed: %v", i+1, len(urls), res.Err)
			} else {
				logger.Debug("Opened %d/%d: %s", i+1, len(urls), u)
			}
			results <- res
		}
	}()

	return results
}

// Pending returns the number of dispatches still opening URLs.
func (d *Dispatcher) Pending() int {
	return int(d.pending.Load())
}

// Wait blocks until every dispatch started so far has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// open hands one URL to the opener.
func (d *Dispatcher) open(ctx context.Context, u string) error {
	if d.opener == nil {
		return domain.ErrOpenerUnavailable
	}
	return d.opener.Open(ctx, u)
}

// newPacer returns a limiter that releases one token immediately and one
// more every interval.
func newPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Drain blocks until results is closed and returns every result received.
func Drain(results <-chan domain.DispatchResult) []domain.DispatchResult {
	var out []domain.DispatchResult
	for r := range results {
		out = append(out, r)
	}
	return out
}
