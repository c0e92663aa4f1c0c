package spindle

import "sync"

type manualSub struct {
	token uint64
	cb    Callback
}

// Cell is the reactive value container. The *Cell handle has shared
// ownership semantics: copies of the pointer observe the same storage and
// participate in the same dependency edges. The value is safe to read and
// write from any goroutine; change callbacks run synchronously on the
// writer's goroutine once the value lock has been released.
type Cell[T any] struct {
	id CellID
	tc *TrackingContext

	mu    sync.RWMutex
	value T

	subsMu    sync.Mutex
	subs      []manualSub
	nextToken uint64
}

// NewCell creates a cell holding initial, registered against tc.
func NewCell[T any](tc *TrackingContext, initial T) *Cell[T] {
	return &Cell[T]{
		id:    nextCellID(),
		tc:    tc,
		value: initial,
	}
}

func (c *Cell[T]) isSource() {}

// ID returns the cell's identifier.
func (c *Cell[T]) ID() CellID {
	return c.id
}

// Value returns a copy of the current value and records the read against the
// innermost tracking frame, if any. The read is recorded before the value is
// taken: a write racing with it finds the edge already in place and at worst
// re-marks the reader dirty, instead of slipping between read and
// registration unseen.
func (c *Cell[T]) Value() T {
	c.tc.trackRead(c.id)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Peek returns a copy of the current value without recording a dependency.
func (c *Cell[T]) Peek() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// With runs fn with read access to the value, recording the read. fn must
// not retain the value past its return if T has reference semantics.
func (c *Cell[T]) With(fn func(v T)) {
	c.tc.trackRead(c.id)
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.value)
}

// WithMut runs fn with exclusive access to the value. Mutating is not a
// dependency, so nothing is recorded, and no notification is sent on return;
// callers that changed the value must call NotifyChanged afterwards.
func (c *Cell[T]) WithMut(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value)
}

// SetValue replaces the value and then notifies, first the manual
// subscribers in subscription order, then the tracked dependents. Both
// passes run with no lock held on the value.
func (c *Cell[T]) SetValue(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.NotifyChanged()
}

// Update mutates the value in place via fn, then notifies like SetValue.
func (c *Cell[T]) Update(fn func(v *T)) {
	c.mu.Lock()
	fn(&c.value)
	c.mu.Unlock()
	c.NotifyChanged()
}

// NotifyChanged runs the notification fan-out for this cell without writing
// it. It is the explicit companion of WithMut.
func (c *Cell[T]) NotifyChanged() {
	c.subsMu.Lock()
	manual := make([]Callback, len(c.subs))
	for i, s := range c.subs {
		manual[i] = s.cb
	}
	c.subsMu.Unlock()
	c.tc.cellChanged(c.id, manual)
}

// Subscribe registers a callback that fires on every SetValue, Update and
// NotifyChanged, whether or not any tracked subscriber read the cell. The
// returned function removes the subscription.
func (c *Cell[T]) Subscribe(cb Callback) (unsubscribe func()) {
	c.subsMu.Lock()
	c.nextToken++
	token := c.nextToken
	c.subs = append(c.subs, manualSub{token: token, cb: cb})
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		for i, s := range c.subs {
			if s.token == token {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
