package spindle_test

import (
	"testing"

	"github.com/spindlework/spindle"
	"github.com/stretchr/testify/assert"
)

// should coalesce many writes into one notification pass per subscriber
func TestBatchCoalesces(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 1)
	b := spindle.NewCell(tc, 2)

	runs := 0
	sum := 0
	spindle.NewEffect(tc, func() error {
		sum = a.Value() + b.Value()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	tc.Batch(func() {
		a.SetValue(10)
		b.SetValue(20)

		// writes land immediately, notifications wait
		assert.Equal(t, 10, a.Peek())
		assert.Equal(t, 20, b.Peek())
		assert.Equal(t, 1, runs)
	})

	assert.Equal(t, 2, runs)
	assert.Equal(t, 30, sum)
}

// should defer manual subscribers too, once per written cell
func TestBatchManualSubscribers(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 0)

	calls := 0
	seen := -1
	a.Subscribe(func() {
		calls++
		seen = a.Peek()
	})

	tc.Batch(func() {
		a.SetValue(1)
		a.SetValue(2)
		a.SetValue(3)
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, seen)
}

// should treat nested batches as one scope
func TestBatchNesting(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 0)

	runs := 0
	spindle.NewEffect(tc, func() error {
		a.Value()
		runs++
		return nil
	})

	tc.StartBatch()
	a.SetValue(1)
	tc.StartBatch()
	a.SetValue(2)
	tc.EndBatch()
	assert.Equal(t, 1, runs)
	tc.EndBatch()
	assert.Equal(t, 2, runs)
}

// should close the scope and flush even when the closure panics
func TestBatchFlushesOnPanic(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	a := spindle.NewCell(tc, 0)

	runs := 0
	spindle.NewEffect(tc, func() error {
		a.Value()
		runs++
		return nil
	})

	assert.Panics(t, func() {
		tc.Batch(func() {
			a.SetValue(9)
			panic("boom")
		})
	})

	assert.Equal(t, 2, runs)

	// the depth counter is back to zero, writes notify immediately again
	a.SetValue(10)
	assert.Equal(t, 3, runs)
}
