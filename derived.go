package spindle

import (
	"sync"
	"sync/atomic"
)

// Derived memoizes the result of a pure computation over cells. The
// computation is re-tracked on every run, so its dependency set follows
// whatever it actually read last. Invalidation is push-based but cheap (a
// dirty flag), recomputation is strictly pull-based: nothing recomputes
// until the next Value call.
type Derived[T any] struct {
	id      SubscriberID
	tc      *TrackingContext
	compute func() T

	mu     sync.Mutex
	cached *T
	dirty  atomic.Bool
}

// NewDerived creates a derived value over compute. Nothing runs until the
// first Value call.
func NewDerived[T any](tc *TrackingContext, compute func() T) *Derived[T] {
	d := &Derived[T]{
		id:      nextSubscriberID(),
		tc:      tc,
		compute: compute,
	}
	d.dirty.Store(true)
	return d
}

func (d *Derived[T]) isSource() {}

// ID returns the derived value's subscriber identifier.
func (d *Derived[T]) ID() SubscriberID {
	return d.id
}

// Value returns the cached result, recomputing it first if a dependency
// changed since the last run. Safe to call from multiple goroutines; under a
// race the computation may run more than once, but every cached value is
// consistent with its own dependency read set.
func (d *Derived[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.dirty.Load() && d.cached != nil {
		return *d.cached
	}
	// Clear before computing so an invalidation that lands mid-run is kept
	// for the next read instead of being swallowed.
	d.dirty.Store(false)
	d.tc.startTracking(d.id, func() {
		d.dirty.Store(true)
	})
	defer d.tc.stopTracking()
	computed := false
	defer func() {
		// A panicking compute must not leave the old cache looking clean.
		if !computed {
			d.dirty.Store(true)
		}
	}()
	v := d.compute()
	computed = true
	d.cached = &v
	return v
}

// Invalidate forces the next Value call to recompute without touching the
// dependency edges.
func (d *Derived[T]) Invalidate() {
	d.dirty.Store(true)
}

// IsDirty reports whether the next Value call would recompute.
func (d *Derived[T]) IsDirty() bool {
	return d.dirty.Load() || d.peekCached() == nil
}

func (d *Derived[T]) peekCached() *T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cached
}

// Dispose removes the derived value from the dependency graph. A later
// Value call still works and will re-subscribe it.
func (d *Derived[T]) Dispose() {
	d.tc.DisposeSubscriber(d.id)
}
