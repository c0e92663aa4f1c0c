package spindle

import "sync/atomic"

// Effect runs a body for its side effects and re-runs it whenever a cell it
// read changes. Each run clears the previous dependency edges and records a
// fresh set, so the body may branch and read different cells on different
// runs.
//
// Errors returned by the body go to the context's OnErrorFunc. Panics in the
// body are not caught and propagate to whoever triggered the run.
type Effect struct {
	id     SubscriberID
	tc     *TrackingContext
	fn     func() error
	active atomic.Bool
}

// NewEffect creates an effect and runs it once, synchronously, before
// returning.
func NewEffect(tc *TrackingContext, fn func() error) *Effect {
	e := newEffect(tc, fn)
	e.Run()
	return e
}

// NewLazyEffect creates an effect without running it. It reacts to nothing
// until the caller invokes Run.
func NewLazyEffect(tc *TrackingContext, fn func() error) *Effect {
	return newEffect(tc, fn)
}

func newEffect(tc *TrackingContext, fn func() error) *Effect {
	e := &Effect{
		id: nextSubscriberID(),
		tc: tc,
		fn: fn,
	}
	e.active.Store(true)
	return e
}

func (e *Effect) isSource() {}

// ID returns the effect's subscriber identifier.
func (e *Effect) ID() SubscriberID {
	return e.id
}

// Run executes the body under tracking. Stale edges from the previous run
// are cleared first and a fresh set is recorded from whatever the body reads
// this time. A change notification calls straight back into Run. No-op while
// stopped.
func (e *Effect) Run() {
	if !e.active.Load() {
		return
	}
	e.tc.startTracking(e.id, func() {
		e.Run()
	})
	defer e.tc.stopTracking()
	if err := e.fn(); err != nil && e.tc.onError != nil {
		e.tc.onError(e, err)
	}
}

// Stop deactivates the effect and removes all of its edges from the
// tracking context. Future cell changes cannot reach it.
func (e *Effect) Stop() {
	e.active.Store(false)
	e.tc.DisposeSubscriber(e.id)
}

// Resume reactivates the effect flag only. Edges removed by Stop are not
// restored: the effect reacts to nothing until Run is called explicitly.
func (e *Effect) Resume() {
	e.active.Store(true)
}

// Active reports whether Run would execute the body.
func (e *Effect) Active() bool {
	return e.active.Load()
}
