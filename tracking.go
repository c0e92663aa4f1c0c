package spindle

import (
	"slices"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// frame is one entry on the tracking stack: the subscriber currently being
// (re)computed and the callback to fire when one of its reads later changes.
type frame struct {
	id SubscriberID
	cb Callback
}

type pendingCell struct {
	id     CellID
	manual []Callback
}

// TrackingContext attributes cell reads to the subscriber currently being
// executed and lets cell writes fan out to exactly the subscribers that last
// read them. It is the explicit equivalent of a thread-local registry: create
// one context per goroutine that drives tracked computations. Cells created
// against a context may be read and written from any goroutine, but their
// change callbacks run on the writer's goroutine; use the polled async bridge
// to marshal background results onto the context's own goroutine.
type TrackingContext struct {
	mu sync.Mutex

	stack  []frame
	paused [][]frame

	// forward and reverse are mirror images of each other: every
	// (cell, subscriber) pair appears in both or in neither.
	forward   map[CellID]mapset.Set[SubscriberID]
	reverse   map[SubscriberID]mapset.Set[CellID]
	callbacks map[SubscriberID]Callback

	batchDepth int
	pending    []pendingCell
	pendingIDs mapset.Set[CellID]

	onError OnErrorFunc
}

// NewTrackingContext creates an empty context. onError receives errors
// returned by effect bodies and may be nil to discard them.
func NewTrackingContext(onError OnErrorFunc) *TrackingContext {
	return &TrackingContext{
		forward:    map[CellID]mapset.Set[SubscriberID]{},
		reverse:    map[SubscriberID]mapset.Set[CellID]{},
		callbacks:  map[SubscriberID]Callback{},
		pendingIDs: mapset.NewThreadUnsafeSet[CellID](),
		onError:    onError,
	}
}

// startTracking clears every edge previously recorded for the subscriber,
// registers its callback, and pushes it onto the stack. Clearing first is
// what makes dependency sets dynamic: after each run the subscriber is only
// subscribed to what it read this time.
func (tc *TrackingContext) startTracking(id SubscriberID, cb Callback) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.clearEdgesLocked(id)
	tc.callbacks[id] = cb
	tc.stack = append(tc.stack, frame{id: id, cb: cb})
}

// stopTracking pops the current tracking frame.
func (tc *TrackingContext) stopTracking() frame {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	last := len(tc.stack) - 1
	f := tc.stack[last]
	tc.stack = tc.stack[:last]
	return f
}

// trackRead records an edge between the cell and the innermost tracking
// frame. Reads outside any frame are not attributed to anyone.
func (tc *TrackingContext) trackRead(cell CellID) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.stack) == 0 {
		return
	}
	top := tc.stack[len(tc.stack)-1]
	fwd, ok := tc.forward[cell]
	if !ok {
		fwd = mapset.NewThreadUnsafeSet[SubscriberID]()
		tc.forward[cell] = fwd
	}
	fwd.Add(top.id)
	rev, ok := tc.reverse[top.id]
	if !ok {
		rev = mapset.NewThreadUnsafeSet[CellID]()
		tc.reverse[top.id] = rev
	}
	rev.Add(cell)
}

func (tc *TrackingContext) clearEdgesLocked(id SubscriberID) {
	rev, ok := tc.reverse[id]
	if !ok {
		return
	}
	for _, cell := range rev.ToSlice() {
		if fwd, ok := tc.forward[cell]; ok {
			fwd.Remove(id)
			if fwd.Cardinality() == 0 {
				delete(tc.forward, cell)
			}
		}
	}
	delete(tc.reverse, id)
}

// subscribersLocked snapshots the callbacks subscribed to a cell in
// subscriber creation order.
func (tc *TrackingContext) subscribersLocked(cell CellID) []Callback {
	fwd, ok := tc.forward[cell]
	if !ok {
		return nil
	}
	ids := fwd.ToSlice()
	slices.Sort(ids)
	cbs := make([]Callback, 0, len(ids))
	for _, id := range ids {
		if cb, ok := tc.callbacks[id]; ok && cb != nil {
			cbs = append(cbs, cb)
		}
	}
	return cbs
}

// cellChanged runs the notification fan-out for a cell: the manual
// subscribers in subscription order, then the tracked subscribers. While a
// batch is open the fan-out is deferred instead, coalescing repeated writes
// to the same cell. Callbacks are always invoked after the internal lock has
// been released, as they frequently read or write cells themselves.
func (tc *TrackingContext) cellChanged(cell CellID, manual []Callback) {
	tc.mu.Lock()
	if tc.batchDepth > 0 {
		if tc.pendingIDs.Contains(cell) {
			for i := range tc.pending {
				if tc.pending[i].id == cell {
					tc.pending[i].manual = manual
					break
				}
			}
		} else {
			tc.pendingIDs.Add(cell)
			tc.pending = append(tc.pending, pendingCell{id: cell, manual: manual})
		}
		tc.mu.Unlock()
		return
	}
	tracked := tc.subscribersLocked(cell)
	tc.mu.Unlock()

	for _, cb := range manual {
		cb()
	}
	for _, cb := range tracked {
		cb()
	}
}

// StartBatch opens a batch scope. Writes inside the scope still mutate cell
// values immediately but their notifications are held back until the
// outermost EndBatch.
func (tc *TrackingContext) StartBatch() {
	tc.mu.Lock()
	tc.batchDepth++
	tc.mu.Unlock()
}

// EndBatch closes one batch scope. When the outermost scope closes, every
// deferred notification is flushed in one pass: each written cell's manual
// subscribers fire once, then each affected tracked subscriber fires exactly
// once no matter how many of its dependencies were written.
func (tc *TrackingContext) EndBatch() {
	tc.mu.Lock()
	tc.batchDepth--
	if tc.batchDepth != 0 {
		tc.mu.Unlock()
		return
	}
	pending := tc.pending
	tc.pending = nil
	tc.pendingIDs = mapset.NewThreadUnsafeSet[CellID]()

	seen := mapset.NewThreadUnsafeSet[SubscriberID]()
	var tracked []Callback
	for _, pc := range pending {
		fwd, ok := tc.forward[pc.id]
		if !ok {
			continue
		}
		ids := fwd.ToSlice()
		slices.Sort(ids)
		for _, id := range ids {
			if seen.Contains(id) {
				continue
			}
			seen.Add(id)
			if cb, ok := tc.callbacks[id]; ok && cb != nil {
				tracked = append(tracked, cb)
			}
		}
	}
	tc.mu.Unlock()

	for _, pc := range pending {
		for _, cb := range pc.manual {
			cb()
		}
	}
	for _, cb := range tracked {
		cb()
	}
}

// Batch runs fn inside a batch scope. Nested calls are transparent; only the
// outermost scope flushes. The scope is closed even if fn panics.
func (tc *TrackingContext) Batch(fn func()) {
	tc.StartBatch()
	defer tc.EndBatch()
	fn()
}

// PauseTracking suspends dependency recording until ResumeTracking. Reads in
// between are attributed to no one, like reads outside any frame.
func (tc *TrackingContext) PauseTracking() {
	tc.mu.Lock()
	tc.paused = append(tc.paused, tc.stack)
	tc.stack = nil
	tc.mu.Unlock()
}

// ResumeTracking restores the tracking stack saved by the matching
// PauseTracking.
func (tc *TrackingContext) ResumeTracking() {
	tc.mu.Lock()
	last := len(tc.paused) - 1
	tc.stack = tc.paused[last]
	tc.paused = tc.paused[:last]
	tc.mu.Unlock()
}

// Untracked runs fn with tracking paused.
func (tc *TrackingContext) Untracked(fn func()) {
	tc.PauseTracking()
	defer tc.ResumeTracking()
	fn()
}

// DisposeSubscriber removes every edge recorded for the subscriber, in both
// directions, along with its callback table entry. Idempotent.
func (tc *TrackingContext) DisposeSubscriber(id SubscriberID) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.clearEdgesLocked(id)
	delete(tc.callbacks, id)
}

// DependentCount reports how many subscribers are currently subscribed to
// the cell through tracking. Manual subscribers are not counted.
func (tc *TrackingContext) DependentCount(cell CellID) int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	fwd, ok := tc.forward[cell]
	if !ok {
		return 0
	}
	return fwd.Cardinality()
}
