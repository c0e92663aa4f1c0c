// Package spindle is a fine-grained reactive state runtime: cells hold
// values, derived values memoize computations over them, and effects re-run
// when the cells they read change. Dependencies are discovered at run time by
// recording which cells a subscriber reads, so a subscriber that branches and
// reads different cells on different runs is only subscribed to what it read
// last.
package spindle

import "sync/atomic"

// CellID identifies a reactive cell. Ids come from a process-wide counter and
// are never reused, so a stale id cannot alias a newer cell.
type CellID uint64

// SubscriberID identifies a subscriber (a derived value or an effect).
type SubscriberID uint64

var (
	cellIDCounter       atomic.Uint64
	subscriberIDCounter atomic.Uint64
)

func nextCellID() CellID {
	return CellID(cellIDCounter.Add(1))
}

func nextSubscriberID() SubscriberID {
	return SubscriberID(subscriberIDCounter.Add(1))
}

// Callback is invoked with no arguments when a tracked dependency changes.
type Callback func()

// Source marks the reactive primitives that can be handed to an OnErrorFunc.
type Source interface {
	isSource()
}

// OnErrorFunc receives errors returned by effect bodies.
type OnErrorFunc func(from Source, err error)
