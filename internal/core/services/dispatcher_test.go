package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/atsearch/internal/core/domain"
)

// recordingOpener implements driven.URLOpener and records each open.
type recordingOpener struct {
	mu     sync.Mutex
	urls   []string
	times  []time.Time
	failOn map[string]error
}

func (o *recordingOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	o.times = append(o.times, time.Now())
	if o.failOn != nil {
		return o.failOn[url]
	}
	return nil
}

func (o *recordingOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.urls))
	copy(out, o.urls)
	return out
}

func TestDispatcher_OpensInOrder(t *testing.T) {
	opener := &recordingOpener{}
	d := NewDispatcher(opener, 0)
	urls := []string{"https://a.example", "https://b.example", "https://c.example"}

	results := Drain(d.Dispatch(context.Background(), "sub-1", urls))

	assert.Equal(t, urls, opener.opened())
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, 3, r.Total)
		assert.Equal(t, urls[i], r.URL)
		assert.Equal(t, "sub-1", r.SubmissionID)
		assert.NoError(t, r.Err)
	}
	assert.True(t, results[2].Last())
}

func TestDispatcher_StaggersByInterval(t *testing.T) {
	opener := &recordingOpener{}
	interval := 40 * time.Millisecond
	d := NewDispatcher(opener, interval)

	start := time.Now()
	Drain(d.Dispatch(context.Background(), "sub", []string{"a", "b", "c"}))

	require.Len(t, opener.times, 3)
	// First open is immediate; each following one waits an interval.
	assert.Less(t, opener.times[0].Sub(start), interval)
	for i := 1; i < 3; i++ {
		gap := opener.times[i].Sub(opener.times[i-1])
		assert.GreaterOrEqual(t, gap, interval-5*time.Millisecond, "gap %d", i)
	}
	assert.GreaterOrEqual(t, opener.times[2].Sub(start), 2*interval-5*time.Millisecond)
}

func TestDispatcher_EmptyURLs(t *testing.T) {
	d := NewDispatcher(&recordingOpener{}, time.Second)

	results := d.Dispatch(context.Background(), "sub", nil)

	_, ok := <-results
	assert.False(t, ok, "channel should be closed")
}

func TestDispatcher_ReportsOpenErrors(t *testing.T) {
	opener := &recordingOpener{failOn: map[string]error{"b": errors.New("popup blocked")}}
	d := NewDispatcher(opener, 0)

	results := Drain(d.Dispatch(context.Background(), "sub", []string{"a", "b", "c"}))

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.EqualError(t, results[1].Err, "popup blocked")
	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"a", "b", "c"}, opener.opened())
}

func TestDispatcher_NilOpener(t *testing.T) {
	d := NewDispatcher(nil, 0)

	results := Drain(d.Dispatch(context.Background(), "sub", []string{"a"}))

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, domain.ErrOpenerUnavailable)
}

func TestDispatcher_NotCancelledByContext(t *testing.T) {
	opener := &recordingOpener{}
	d := NewDispatcher(opener, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	results := d.Dispatch(ctx, "sub", []string{"a", "b", "c"})
	cancel()
	got := Drain(results)

	require.Len(t, got, 3)
	for _, r := range got {
		assert.NoError(t, r.Err)
	}
	assert.Equal(t, []string{"a", "b", "c"}, opener.opened())
}

func TestDispatcher_ResultsMayBeIgnored(t *testing.T) {
	opener := &recordingOpener{}
	d := NewDispatcher(opener, 0)

	_ = d.Dispatch(context.Background(), "sub", []string{"a", "b"})

	assert.Eventually(t, func() bool {
		return len(opener.opened()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcher_WaitFinishesIgnoredDispatches(t *testing.T) {
	opener := &recordingOpener{}
	d := NewDispatcher(opener, 20*time.Millisecond)

	_ = d.Dispatch(context.Background(), "one", []string{"a", "b", "c"})
	_ = d.Dispatch(context.Background(), "two", []string{"d", "e"})
	assert.Equal(t, 2, d.Pending())

	d.Wait()

	assert.Equal(t, 0, d.Pending())
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, opener.opened())
}

func TestDispatcher_WaitWithNothingPending(t *testing.T) {
	d := NewDispatcher(&recordingOpener{}, 0)

	d.Wait()
	_ = Drain(d.Dispatch(context.Background(), "sub", nil))
	d.Wait()

	assert.Zero(t, d.Pending())
}

func TestDispatcher_SetInterval(t *testing.T) {
	d := NewDispatcher(nil, domain.DefaultDispatchInterval)
	assert.Equal(t, 300*time.Millisecond, d.Interval())

	d.SetInterval(50 * time.Millisecond)

	assert.Equal(t, 50*time.Millisecond, d.Interval())
}
