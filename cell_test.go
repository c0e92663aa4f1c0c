package spindle_test

import (
	"testing"

	"github.com/spindlework/spindle"
	"github.com/stretchr/testify/assert"
)

// should store and return values
func TestCellSetGet(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	assert.Equal(t, 1, c.Value())
	c.SetValue(5)
	assert.Equal(t, 5, c.Value())

	c.Update(func(v *int) {
		*v += 2
	})
	assert.Equal(t, 7, c.Value())
}

// should make writes visible to other goroutines
func TestCellCrossGoroutineVisibility(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 0)

	c.SetValue(42)
	got := make(chan int)
	go func() {
		got <- c.Peek()
	}()
	assert.Equal(t, 42, <-got)
}

// should invoke manual subscribers on every write, in subscription order
func TestCellManualSubscribers(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 0)

	var order []string
	c.Subscribe(func() { order = append(order, "first") })
	c.Subscribe(func() { order = append(order, "second") })

	c.SetValue(1)
	assert.Equal(t, []string{"first", "second"}, order)

	// no tracked subscriber ever read the cell, manual ones still fire
	c.SetValue(1)
	assert.Len(t, order, 4)
}

// should stop notifying after unsubscribe
func TestCellUnsubscribe(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 0)

	calls := 0
	unsubscribe := c.Subscribe(func() { calls++ })

	c.SetValue(1)
	assert.Equal(t, 1, calls)

	unsubscribe()
	c.SetValue(2)
	assert.Equal(t, 1, calls)
}

// should not notify on WithMut until NotifyChanged is called
func TestCellWithMutExplicitNotify(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, []int{1})

	calls := 0
	c.Subscribe(func() { calls++ })

	c.WithMut(func(v *[]int) {
		*v = append(*v, 2)
	})
	assert.Equal(t, 0, calls)

	c.NotifyChanged()
	assert.Equal(t, 1, calls)
	c.With(func(v []int) {
		assert.Equal(t, []int{1, 2}, v)
	})
}

// should not record a dependency through Peek
func TestCellPeekIsUntracked(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	runs := 0
	spindle.NewEffect(tc, func() error {
		c.Peek()
		runs++
		return nil
	})

	assert.Equal(t, 1, runs)
	c.SetValue(2)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, tc.DependentCount(c.ID()))
}

// should record a dependency through With
func TestCellWithIsTracked(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)

	runs := 0
	spindle.NewEffect(tc, func() error {
		c.With(func(v int) {})
		runs++
		return nil
	})

	assert.Equal(t, 1, runs)
	c.SetValue(2)
	assert.Equal(t, 2, runs)
}

// should share storage between copies of the handle
func TestCellSharedHandle(t *testing.T) {
	tc := spindle.NewTrackingContext(nil)
	c := spindle.NewCell(tc, 1)
	alias := c

	alias.SetValue(9)
	assert.Equal(t, 9, c.Value())
	assert.Equal(t, c.ID(), alias.ID())
}
